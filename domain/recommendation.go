package domain

// MovieSummary carries the display fields every recommendation strategy
// copies from the catalog row.
type MovieSummary struct {
	MovieID     uint   `json:"movie_id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Year        int    `json:"year"`
	Description string `json:"description,omitempty"`
	PosterURL   string `json:"poster_url,omitempty"`
	TrailerURL  string `json:"trailer_url,omitempty"`
}

// Each strategy exposes exactly the score field it produced; the shapes are
// kept as distinct types so a caller can tell which path served it.

type CollaborativeRecommendation struct {
	MovieSummary
	PredictedRating float64 `json:"predicted_rating"`
}

type ContentRecommendation struct {
	MovieSummary
	SimilarityScore float64 `json:"similarity_score"`
}

type HybridRecommendation struct {
	MovieSummary
	CFScore     float64 `json:"cf_score"`
	CBScore     float64 `json:"cb_score"`
	HybridScore float64 `json:"hybrid_score"`
}

type PopularMovie struct {
	MovieSummary
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
}

type GenreMovie struct {
	MovieSummary
	Rating float64 `json:"rating"`
}

// UserRating is a row of a user's own rating history.
type UserRating struct {
	MovieID uint    `json:"movie_id"`
	Title   string  `json:"title"`
	Genre   string  `json:"genre"`
	Year    int     `json:"year"`
	Rating  float64 `json:"rating"`
	Review  string  `json:"review,omitempty"`
}
