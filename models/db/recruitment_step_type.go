package dbmodels

type RecruitmentStepType struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex"`
}
