package dbmodels

type RecruitmentStep struct {
	BaseModel
	CandidateID           string               `gorm:"type:varchar(36);index:idx_candidate"`
	Candidate             *Candidate           `gorm:"foreignKey:CandidateID"`
	RecruitmentStepTypeID string               `gorm:"type:varchar(36)"`
	RecruitmentStepType   *RecruitmentStepType `gorm:"foreignKey:RecruitmentStepTypeID"`
	Event                 *Event               `gorm:"foreignKey:RecruitmentStepID"`
}

// Name название этапа совпадает с названием его типа
func (r RecruitmentStep) Name() string {
	if r.RecruitmentStepType == nil {
		return ""
	}
	return r.RecruitmentStepType.Name
}
