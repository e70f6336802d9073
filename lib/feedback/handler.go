package feedbackhandler

import (
	"context"
	"interview-scheduler/db"
	candidatestore "interview-scheduler/lib/candidate/store"
	interviewerstore "interview-scheduler/lib/event/interviewer-store"
	feedbackstore "interview-scheduler/lib/feedback/store"
	filestorage "interview-scheduler/lib/file-storage"
	initchecker "interview-scheduler/lib/utils/init-checker"
	feedbackapimodels "interview-scheduler/models/api/feedback"
	dbmodels "interview-scheduler/models/db"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data feedbackapimodels.FeedbackData) (id string, err error)
	ListByCandidate(candidateID string) (list []feedbackapimodels.FeedbackView, err error)
	AttachFile(ctx context.Context, id, fileName, contentType string, file io.Reader, fileSize int64) error
	GetFile(ctx context.Context, id string) (file feedbackapimodels.FileView, err error)
}

var Instance Provider

var (
	ErrNotFound           = errors.New("отзыв не найден")
	ErrCandidateNotFound  = errors.New("кандидат не найден")
	ErrForeignInterviewer = errors.New("интервьюер не участвовал в собеседованиях кандидата")
	ErrFileNotFound       = errors.New("к отзыву не приложен файл")
)

const fileStoragePrefix = "feedback"

func NewHandler() {
	instance := impl{
		store:            feedbackstore.NewInstance(db.DB),
		candidateStore:   candidatestore.NewInstance(db.DB),
		interviewerStore: interviewerstore.NewInstance(db.DB),
		files:            filestorage.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
		"interviewerStore", instance.interviewerStore,
		"files", instance.files,
	)
	Instance = instance
}

type impl struct {
	store            feedbackstore.Provider
	candidateStore   candidatestore.Provider
	interviewerStore interviewerstore.Provider
	files            filestorage.Provider
}

func (i impl) Create(data feedbackapimodels.FeedbackData) (id string, err error) {
	logger := log.
		WithField("candidate_id", data.CandidateID).
		WithField("interviewer_id", data.InterviewerID)
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", ErrCandidateNotFound
	}
	interviewers, err := i.interviewerStore.ListByCandidate(data.CandidateID)
	if err != nil {
		return "", err
	}
	found := false
	for _, interviewer := range interviewers {
		if interviewer.ID == data.InterviewerID {
			found = true
			break
		}
	}
	if !found {
		return "", ErrForeignInterviewer
	}
	interviewerID := data.InterviewerID
	id, err = i.store.Create(dbmodels.Feedback{
		CandidateID:   data.CandidateID,
		InterviewerID: &interviewerID,
		Rating:        data.Rating,
		Content:       data.Content,
	})
	if err != nil {
		return "", err
	}
	logger.WithField("feedback_id", id).Info("Добавлен отзыв по кандидату")
	return id, nil
}

func (i impl) ListByCandidate(candidateID string) (list []feedbackapimodels.FeedbackView, err error) {
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}
	recList, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	list = make([]feedbackapimodels.FeedbackView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, feedbackapimodels.FeedbackConvert(rec))
	}
	return list, nil
}

func (i impl) AttachFile(ctx context.Context, id, fileName, contentType string, file io.Reader, fileSize int64) error {
	logger := log.WithField("feedback_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	key, err := i.files.UploadFile(ctx, fileStoragePrefix+"/"+id, file, fileSize, contentType)
	if err != nil {
		return err
	}
	err = i.store.Update(id, map[string]interface{}{
		"file_key":          key,
		"file_name":         fileName,
		"file_content_type": contentType,
	})
	if err != nil {
		return err
	}
	if rec.HasFile() {
		// предыдущее вложение больше не нужно
		if err = i.files.DeleteFile(ctx, rec.FileKey); err != nil {
			logger.WithError(err).Warn("ошибка удаления предыдущего вложения")
		}
	}
	logger.WithField("key", key).Info("К отзыву приложен файл")
	return nil
}

func (i impl) GetFile(ctx context.Context, id string) (file feedbackapimodels.FileView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return feedbackapimodels.FileView{}, err
	}
	if rec == nil {
		return feedbackapimodels.FileView{}, ErrNotFound
	}
	if !rec.HasFile() {
		return feedbackapimodels.FileView{}, ErrFileNotFound
	}
	body, err := i.files.GetFile(ctx, rec.FileKey)
	if err != nil {
		return feedbackapimodels.FileView{}, err
	}
	return feedbackapimodels.FileView{
		FileName:    rec.FileName,
		ContentType: rec.FileContentType,
		Body:        body,
	}, nil
}
