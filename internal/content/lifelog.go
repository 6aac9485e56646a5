package content

// LifeLog is the dashboard view over the metric series.
type LifeLog struct {
	TotalPhotos  int          `json:"totalPhotos"`
	TotalSteps   int          `json:"totalSteps"`
	RecentMovies []MovieCount `json:"recentMovies"`
	TopSkill     *Skill       `json:"topSkill,omitempty"`
}

const recentMovieMonths = 4

// Summarize derives the dashboard figures from the current series.
func (s *Store) Summarize() LifeLog {
	var out LifeLog
	for _, p := range s.PhotoStats() {
		out.TotalPhotos += p.Count
	}
	for _, st := range s.Steps() {
		out.TotalSteps += st.Steps
	}

	movies := s.Movies()
	from := max(len(movies)-recentMovieMonths, 0)
	out.RecentMovies = cloneList(movies[from:])

	for _, sk := range s.Skills() {
		if out.TopSkill == nil || sk.Level > out.TopSkill.Level {
			top := sk
			out.TopSkill = &top
		}
	}
	return out
}
