package steptypeprovider

import (
	dictapimodels "interview-scheduler/models/api/dict"
	dbmodels "interview-scheduler/models/db"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stepTypeStoreFake struct {
	recs    map[string]dbmodels.RecruitmentStepType
	inUse   map[string]bool
	deleted []string
}

func (f *stepTypeStoreFake) Create(rec dbmodels.RecruitmentStepType) (string, error) {
	rec.ID = "t-new"
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *stepTypeStoreFake) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	rec.Name = updMap["name"].(string)
	f.recs[id] = rec
	return nil
}

func (f *stepTypeStoreFake) GetByID(id string) (*dbmodels.RecruitmentStepType, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *stepTypeStoreFake) List(name string) ([]dbmodels.RecruitmentStepType, error) {
	var list []dbmodels.RecruitmentStepType
	for _, rec := range f.recs {
		if strings.Contains(strings.ToLower(rec.Name), strings.ToLower(name)) {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *stepTypeStoreFake) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *stepTypeStoreFake) IsUnique(selfID, name string) (bool, error) {
	for id, rec := range f.recs {
		if id != selfID && strings.EqualFold(rec.Name, name) {
			return false, nil
		}
	}
	return true, nil
}

func (f *stepTypeStoreFake) InUse(id string) (bool, error) {
	return f.inUse[id], nil
}

func TestStepTypeHandler(t *testing.T) {
	newHandler := func() (impl, *stepTypeStoreFake) {
		store := &stepTypeStoreFake{
			recs: map[string]dbmodels.RecruitmentStepType{
				"t1": {BaseModel: dbmodels.BaseModel{ID: "t1"}, Name: "pairing"},
				"t2": {BaseModel: dbmodels.BaseModel{ID: "t2"}, Name: "hr"},
			},
			inUse: map[string]bool{"t1": true},
		}
		return impl{store: store}, store
	}

	t.Run(`create trims name`, func(t *testing.T) {
		h, store := newHandler()
		id, err := h.Create(dictapimodels.StepTypeData{Name: "  final  "})
		require.NoError(t, err)
		require.Equal(t, "final", store.recs[id].Name)
	})
	t.Run(`duplicate name is case insensitive`, func(t *testing.T) {
		h, _ := newHandler()
		_, err := h.Create(dictapimodels.StepTypeData{Name: "Pairing"})
		require.ErrorIs(t, err, ErrDuplicate)
		require.ErrorIs(t, h.Update("t2", dictapimodels.StepTypeData{Name: "PAIRING"}), ErrDuplicate)
	})
	t.Run(`rename keeps own name`, func(t *testing.T) {
		h, store := newHandler()
		require.NoError(t, h.Update("t1", dictapimodels.StepTypeData{Name: "Pairing"}))
		require.Equal(t, "Pairing", store.recs["t1"].Name)
	})
	t.Run(`find by name`, func(t *testing.T) {
		h, _ := newHandler()
		list, err := h.FindByName(dictapimodels.StepTypeFilter{Name: "pai"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "pairing", list[0].Name)
	})
	t.Run(`delete`, func(t *testing.T) {
		h, store := newHandler()
		require.ErrorIs(t, h.Delete("t1"), ErrInUse)
		require.ErrorIs(t, h.Delete("t9"), ErrNotFound)
		require.NoError(t, h.Delete("t2"))
		require.Equal(t, []string{"t2"}, store.deleted)
	})
}
