package domain

import (
	"basecamp/errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type CreateTripCommand struct {
	Title       string    `validate:"required,max=150"`
	Destination string    `validate:"required,max=150"`
	Description string    `validate:"required,max=2000"`
	StartAt     time.Time `validate:"required"`
	EndAt       time.Time `validate:"required,gtefield=StartAt"`
	// Status is optional; blank means planned.
	Status string
}

func (c CreateTripCommand) Validate() error {
	return validateStruct(c)
}

type JoinTripCommand struct {
	Message string `validate:"max=1000"`
}

func (c JoinTripCommand) Validate() error {
	return validateStruct(c)
}

type SendMessageCommand struct {
	Content string `validate:"required,max=4000"`
}

func (c SendMessageCommand) Validate() error {
	c.Content = strings.TrimSpace(c.Content)
	return validateStruct(c)
}

type CreateThreadCommand struct {
	ListingID string `validate:"required"`
	Message   string `validate:"required,max=4000"`
}

func (c CreateThreadCommand) Validate() error {
	c.Message = strings.TrimSpace(c.Message)
	return validateStruct(c)
}

type PublishListingCommand struct {
	Title       string  `validate:"required,max=150"`
	Description string  `validate:"required,max=1000"`
	Condition   string  `validate:"required"`
	Price       float64 `validate:"gt=0"`
	Location    string  `validate:"required,max=120"`
	TradeOption string  `validate:"required"`
	ImageURL    string  `validate:"max=500"`
}

func (c PublishListingCommand) Validate() error {
	return validateStruct(c)
}

func validateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	return nil
}
