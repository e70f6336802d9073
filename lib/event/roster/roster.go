package roster

import (
	dbmodels "interview-scheduler/models/db"
)

// ParticipantFinder возвращает только найденных участников, отсутствующие ид пропускаются
type ParticipantFinder interface {
	FindAllByID(ids []string) ([]dbmodels.Participant, error)
}

// InterviewerFinder возвращает только найденных интервьюеров, отсутствующие ид пропускаются
type InterviewerFinder interface {
	FindAllByID(ids []string) ([]dbmodels.Interviewer, error)
}

type Roster struct {
	participants ParticipantFinder
	interviewers InterviewerFinder
}

func New(participants ParticipantFinder, interviewers InterviewerFinder) Roster {
	return Roster{
		participants: participants,
		interviewers: interviewers,
	}
}

// AddByParticipantIDs добавляет в событие нового (несохраненного) интервьюера на каждого найденного участника.
// Повторное добавление того же участника не проверяется.
func (r Roster) AddByParticipantIDs(event *dbmodels.Event, participantIDs []string) ([]dbmodels.Interviewer, error) {
	if len(participantIDs) == 0 {
		return nil, nil
	}
	participants, err := r.participants.FindAllByID(participantIDs)
	if err != nil {
		return nil, err
	}
	added := make([]dbmodels.Interviewer, 0, len(participants))
	for idx := range participants {
		participant := participants[idx]
		interviewer := dbmodels.Interviewer{
			EventID:       event.ID,
			ParticipantID: participant.ID,
			Participant:   &participant,
		}
		event.Interviewers = append(event.Interviewers, interviewer)
		added = append(added, interviewer)
	}
	return added, nil
}

// RemoveByIDs убирает найденных интервьюеров из события и возвращает их для удаления.
// Принадлежность интервьюера событию не проверяется.
func (r Roster) RemoveByIDs(event *dbmodels.Event, interviewerIDs []string) ([]dbmodels.Interviewer, error) {
	if len(interviewerIDs) == 0 {
		return nil, nil
	}
	removed, err := r.interviewers.FindAllByID(interviewerIDs)
	if err != nil {
		return nil, err
	}
	if len(removed) == 0 {
		return nil, nil
	}
	removedIDs := make(map[string]struct{}, len(removed))
	for _, rec := range removed {
		removedIDs[rec.ID] = struct{}{}
	}
	kept := make([]dbmodels.Interviewer, 0, len(event.Interviewers))
	for _, rec := range event.Interviewers {
		if _, ok := removedIDs[rec.ID]; ok && rec.ID != "" {
			continue
		}
		kept = append(kept, rec)
	}
	event.Interviewers = kept
	return removed, nil
}
