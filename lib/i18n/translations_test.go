package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslator(t *testing.T) {
	tr := NewTranslator("en")

	t.Run(`template data`, func(t *testing.T) {
		label := tr.T("ru", MsgReminderSubject, nil)
		require.Equal(t, "Напоминание о собеседовании", label)
		body := tr.T("en", MsgReminderBody, map[string]any{
			"Name": "Alice", "Candidate": "John", "Step": "pairing", "Start": "10:00", "Location": "room 1",
		})
		require.Equal(t, "Hello, Alice! Reminder: interview with John (pairing) starts at 10:00. Location: room 1", body)
	})

	t.Run(`status label`, func(t *testing.T) {
		require.Equal(t, "Upcoming", tr.T("en", StatusKey("upcoming"), nil))
		require.Equal(t, "Пройден", tr.T("ru", StatusKey("completed"), nil))
	})

	t.Run(`unknown locale falls back to default`, func(t *testing.T) {
		require.Equal(t, "Pending", tr.T("de", StatusKey("pending"), nil))
	})

	t.Run(`unknown key returns key`, func(t *testing.T) {
		require.Equal(t, "missing_key", tr.T("en", "missing_key", nil))
		require.Equal(t, "", tr.T("en", "", nil))
	})

	t.Run(`bad default locale`, func(t *testing.T) {
		require.Equal(t, "en", NewTranslator("???").DefaultLocale())
	})
}
