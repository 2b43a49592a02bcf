package review

type CreateReviewRequest struct {
	BookingID int64    `json:"booking_id" binding:"required"`
	Rating    int      `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string   `json:"comment,omitempty"`
	Photos    []string `json:"photos,omitempty"`
}

type UpdateReviewRequest struct {
	Rating  int      `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string   `json:"comment,omitempty"`
	Photos  []string `json:"photos,omitempty"`
}

type ReportReviewRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type BarberReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

type LikeToggleResponse struct {
	ReviewID    int64 `json:"review_id"`
	LikedByUser bool  `json:"liked_by_user"`
	LikesCount  int   `json:"likes_count"`
}
