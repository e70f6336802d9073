package dbmodels

type Candidate struct {
	BaseModel
	Name             string            `gorm:"type:varchar(255)"`
	Email            string            `gorm:"type:varchar(255)"`
	Phone            string            `gorm:"type:varchar(255)"`
	RecruitmentSteps []RecruitmentStep `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
}
