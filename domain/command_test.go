package domain

import (
	"basecamp/errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateTripCommand_Validate(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	valid := CreateTripCommand{
		Title:       "Tour du Mont Blanc",
		Destination: "Chamonix",
		Description: "Eleven stages",
		StartAt:     start,
		EndAt:       start.AddDate(0, 0, 11),
	}

	t.Run("should accept a complete command", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("should reject an end before the start", func(t *testing.T) {
		cmd := valid
		cmd.EndAt = start.Add(-time.Hour)
		require.ErrorIs(t, cmd.Validate(), errors.ErrInvalidArgument)
	})

	t.Run("should reject a missing title", func(t *testing.T) {
		cmd := valid
		cmd.Title = ""
		require.ErrorIs(t, cmd.Validate(), errors.ErrInvalidArgument)
	})
}

func TestMessageCommands_Validate(t *testing.T) {
	t.Run("should reject blank content", func(t *testing.T) {
		req := require.New(t)
		req.ErrorIs(SendMessageCommand{Content: "  \n "}.Validate(), errors.ErrInvalidArgument)
		req.ErrorIs(CreateThreadCommand{ListingID: "x", Message: "   "}.Validate(), errors.ErrInvalidArgument)
	})

	t.Run("should reject oversized content", func(t *testing.T) {
		req := require.New(t)
		req.ErrorIs(SendMessageCommand{Content: strings.Repeat("a", 4001)}.Validate(), errors.ErrInvalidArgument)
		req.ErrorIs(JoinTripCommand{Message: strings.Repeat("a", 1001)}.Validate(), errors.ErrInvalidArgument)
	})

	t.Run("should accept an empty join note", func(t *testing.T) {
		require.NoError(t, JoinTripCommand{}.Validate())
	})
}

func TestPublishListingCommand_Validate(t *testing.T) {
	valid := PublishListingCommand{
		Title:       "Ice axe",
		Description: "Petzl, 2023",
		Condition:   "good",
		Price:       45,
		Location:    "Annecy",
		TradeOption: "hybrid",
	}

	t.Run("should accept a complete listing", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("should reject a free listing", func(t *testing.T) {
		cmd := valid
		cmd.Price = 0
		require.ErrorIs(t, cmd.Validate(), errors.ErrInvalidArgument)
	})
}
