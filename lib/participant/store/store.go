package participantstore

import (
	dbmodels "interview-scheduler/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Participant) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Participant, error)
	List(name string, page, limit int) (list []dbmodels.Participant, rowCount int64, err error)
	Delete(id string) error
	FindAllByID(ids []string) ([]dbmodels.Participant, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Participant) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления участника")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Participant{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления участника")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Participant, error) {
	rec := dbmodels.Participant{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(name string, page, limit int) (list []dbmodels.Participant, rowCount int64, err error) {
	err = i.filtered(name).Count(&rowCount).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения общего количества участников")
	}
	list = []dbmodels.Participant{}
	err = i.filtered(name).
		Order("name").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка участников")
	}
	return list, rowCount, nil
}

func (i impl) filtered(name string) *gorm.DB {
	tx := i.db.Model(dbmodels.Participant{})
	if name != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(name)+"%")
	}
	return tx
}

func (i impl) Delete(id string) error {
	err := i.db.
		Delete(&dbmodels.Participant{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления участника")
	}
	return nil
}

func (i impl) FindAllByID(ids []string) ([]dbmodels.Participant, error) {
	list := []dbmodels.Participant{}
	if len(ids) == 0 {
		return list, nil
	}
	err := i.db.
		Where("id in (?)", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка поиска участников")
	}
	return list, nil
}
