package steptypestore

import (
	dbmodels "interview-scheduler/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.RecruitmentStepType) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.RecruitmentStepType, error)
	List(name string) ([]dbmodels.RecruitmentStepType, error)
	Delete(id string) error
	IsUnique(selfID, name string) (bool, error)
	InUse(id string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RecruitmentStepType) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления типа этапа")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.RecruitmentStepType{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления типа этапа")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.RecruitmentStepType, error) {
	rec := dbmodels.RecruitmentStepType{BaseModel: dbmodels.BaseModel{ID: id}}
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

func (i impl) List(name string) ([]dbmodels.RecruitmentStepType, error) {
	var result []dbmodels.RecruitmentStepType
	tx := i.db.Model(dbmodels.RecruitmentStepType{})
	if name != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(name)+"%")
	}
	err := tx.Order("name").Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка типов этапов")
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Delete(&dbmodels.RecruitmentStepType{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления типа этапа")
	}
	return nil
}

func (i impl) IsUnique(selfID, name string) (bool, error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.RecruitmentStepType{})
	tx.Where("LOWER(name) = ?", strings.ToLower(name))
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки уникальности типа этапа")
	}
	return rowCount == 0, nil
}

func (i impl) InUse(id string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.RecruitmentStep{}).
		Where("recruitment_step_type_id = ?", id).
		Count(&rowCount).
		Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки использования типа этапа")
	}
	return rowCount != 0, nil
}
