package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCatalog(t *testing.T) {
	t.Run(`каталог статусов полный и упорядоченный`, func(t *testing.T) {
		require.Len(t, StatusOrder, 9)
		require.Equal(t, StatusSaved, StatusOrder[0])
		require.Equal(t, StatusWithdrawn, StatusOrder[8])
		for idx, status := range StatusOrder {
			require.True(t, status.IsValid())
			require.Equal(t, idx, status.Ordinal())
		}
	})

	t.Run(`неизвестный статус`, func(t *testing.T) {
		unknown := ApplicationStatus("ghosted")
		require.False(t, unknown.IsValid())
		require.Equal(t, -1, unknown.Ordinal())
		// метка неизвестного статуса - сам идентификатор
		require.Equal(t, "ghosted", unknown.Label())
	})

	t.Run(`метки статусов`, func(t *testing.T) {
		require.Equal(t, "Phone Screen", StatusPhoneScreen.Label())
		require.Equal(t, "Technical Interview", StatusTechnicalInterview.Label())
	})
}

func TestStatusPrompts(t *testing.T) {
	t.Run(`диалог даты по статусам`, func(t *testing.T) {
		spec := NeedsDatePrompt(StatusApplied)
		require.NotNil(t, spec)
		require.Equal(t, "Application Date", spec.Label)
		require.Equal(t, GranularityDate, spec.Granularity)

		spec = NeedsDatePrompt(StatusPhoneScreen)
		require.NotNil(t, spec)
		require.Equal(t, "Phone Screen Date & Time", spec.Label)
		require.Equal(t, GranularityDateTime, spec.Granularity)

		spec = NeedsDatePrompt(StatusAccepted)
		require.NotNil(t, spec)
		require.Equal(t, "Deadline to Accept/Decline", spec.Label)
	})

	t.Run(`статусы без диалога`, func(t *testing.T) {
		require.Nil(t, NeedsDatePrompt(StatusSaved))
		require.Nil(t, NeedsDatePrompt(StatusRejected))
		require.Nil(t, NeedsDatePrompt(StatusWithdrawn))
	})

	t.Run(`молчаливые переходы`, func(t *testing.T) {
		require.True(t, SuppressesPrompt(StatusRejected))
		require.True(t, SuppressesPrompt(StatusWithdrawn))
		require.False(t, SuppressesPrompt(StatusOffer))
		require.False(t, SuppressesPrompt(StatusAccepted))
	})
}
