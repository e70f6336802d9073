package feedbackapimodels

import (
	dbmodels "interview-scheduler/models/db"
	"time"

	"github.com/pkg/errors"
)

const (
	MinRating = 1
	MaxRating = 5
)

type FeedbackData struct {
	CandidateID   string `json:"candidate_id"`   // Ид кандидата
	InterviewerID string `json:"interviewer_id"` // Ид интервьюера, оставившего отзыв
	Rating        int    `json:"rating"`         // Оценка 1..5
	Content       string `json:"content"`        // Текст отзыва
}

func (f FeedbackData) Validate() error {
	if f.CandidateID == "" {
		return errors.New("не указан кандидат")
	}
	if f.InterviewerID == "" {
		return errors.New("не указан интервьюер")
	}
	if f.Rating < MinRating || f.Rating > MaxRating {
		return errors.Errorf("оценка должна быть от %v до %v", MinRating, MaxRating)
	}
	return nil
}

type FeedbackView struct {
	ID              string    `json:"id"`
	CandidateID     string    `json:"candidate_id"`
	InterviewerID   string    `json:"interviewer_id,omitempty"`
	InterviewerName string    `json:"interviewer_name,omitempty"`
	StepName        string    `json:"step_name,omitempty"`
	Rating          int       `json:"rating"`
	Content         string    `json:"content"`
	FileName        string    `json:"file_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FeedbackConvert(rec dbmodels.Feedback) FeedbackView {
	result := FeedbackView{
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
		Rating:      rec.Rating,
		Content:     rec.Content,
		FileName:    rec.FileName,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.InterviewerID != nil {
		result.InterviewerID = *rec.InterviewerID
	}
	if rec.Interviewer != nil {
		result.InterviewerName = rec.Interviewer.Name()
		if rec.Interviewer.Event != nil && rec.Interviewer.Event.RecruitmentStep != nil {
			result.StepName = rec.Interviewer.Event.RecruitmentStep.Name()
		}
	}
	return result
}

type FileView struct {
	FileName    string
	ContentType string
	Body        []byte
}
