package dbmodels

type Interviewer struct {
	BaseModel
	EventID       string       `gorm:"type:varchar(36);index:idx_event"`
	Event         *Event       `gorm:"foreignKey:EventID"`
	ParticipantID string       `gorm:"type:varchar(36);index:idx_participant"`
	Participant   *Participant `gorm:"foreignKey:ParticipantID"`
}

func (i Interviewer) Name() string {
	if i.Participant == nil {
		return ""
	}
	return i.Participant.Name
}
