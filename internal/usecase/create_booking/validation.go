package create_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateRequest(req Request) (*normalizedRequest, error) {
	if req.Slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.CustomerEmail != nil && *req.CustomerEmail != "" && !emailRegexp.MatchString(*req.CustomerEmail) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slotTime, err := types.ParseFlexible(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	normalized := &normalizedRequest{Request: req, slotTime: slotTime}
	normalized.CustomerName = name
	return normalized, nil
}
