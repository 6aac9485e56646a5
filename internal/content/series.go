package content

// Life-log series and hero images are edited as whole tables. Each Replace
// validates the full list first and installs a copy only if every row passes.

func (s *Store) Skills() []Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skills
}

func (s *Store) ReplaceSkills(list []Skill) error {
	for i, sk := range list {
		if sk.Level < 0 || sk.Level > 100 {
			return invalidSeries("skills", i, "level must be within 0..100")
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = cloneList(list)
	s.touch("skills", "replace", "")
	return nil
}

func (s *Store) GameGenres() []GameGenre {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameGenres
}

func (s *Store) ReplaceGameGenres(list []GameGenre) error {
	for i, g := range list {
		if g.Hours < 0 || g.FullMark < 0 {
			return invalidSeries("gameGenres", i, "hours and fullMark must not be negative")
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameGenres = cloneList(list)
	s.touch("gameGenres", "replace", "")
	return nil
}

func (s *Store) Routine() []RoutineSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.routine
}

func (s *Store) ReplaceRoutine(list []RoutineSlot) error {
	for i, r := range list {
		if r.Value < 0 {
			return invalidSeries("routine", i, "value must not be negative")
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routine = cloneList(list)
	s.touch("routine", "replace", "")
	return nil
}

func (s *Store) Steps() []StepCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.steps
}

func (s *Store) ReplaceSteps(list []StepCount) error {
	for i, st := range list {
		if st.Steps < 0 {
			return invalidSeries("steps", i, "steps must not be negative")
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = cloneList(list)
	s.touch("steps", "replace", "")
	return nil
}

func (s *Store) PhotoStats() []PhotoCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.photoStats
}

func (s *Store) ReplacePhotoStats(list []PhotoCount) error {
	for i, p := range list {
		if p.Count < 0 {
			return invalidSeries("photoStats", i, "count must not be negative")
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photoStats = cloneList(list)
	s.touch("photoStats", "replace", "")
	return nil
}

func (s *Store) Movies() []MovieCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movies
}

func (s *Store) ReplaceMovies(list []MovieCount) error {
	for i, m := range list {
		if m.Movies < 0 || m.Series < 0 {
			return invalidSeries("movies", i, "counts must not be negative")
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = cloneList(list)
	s.touch("movies", "replace", "")
	return nil
}

func (s *Store) HeroImages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heroImages
}

func (s *Store) ReplaceHeroImages(urls []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heroImages = cloneList(urls)
	s.touch("heroImages", "replace", "")
}
