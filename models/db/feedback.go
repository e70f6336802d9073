package dbmodels

type Feedback struct {
	BaseModel
	CandidateID     string       `gorm:"type:varchar(36);index:idx_candidate_feedback"`
	InterviewerID   *string      `gorm:"type:varchar(36)"`
	Interviewer     *Interviewer `gorm:"foreignKey:InterviewerID;constraint:OnDelete:SET NULL"`
	Rating          int
	Content         string
	FileKey         string `gorm:"type:varchar(255)"` // ключ вложения в S3
	FileName        string `gorm:"type:varchar(255)"`
	FileContentType string `gorm:"type:varchar(255)"`
}

func (f Feedback) HasFile() bool {
	return f.FileKey != ""
}
