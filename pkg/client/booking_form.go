// Package client is the booking counterpart of the web client's appointment
// form: it collects patient input, gates submission on the required fields,
// and posts the booking to the appointment endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
	"medifind/pkg/validator"
)

// State is the form's observable state.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
)

var (
	ErrFormIncomplete = errors.New("required fields are missing or invalid")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrBookingFailed  = errors.New("failed to book appointment")
)

// Notifier receives the notifications the form raises on booking outcome.
type Notifier interface {
	Success(title, message string)
	Failure(title, message string)
}

// Fields holds the editable inputs. PatientName, Email, Phone, Date and
// TimeSlot are required; Reason is optional.
type Fields struct {
	PatientName string
	Email       string
	Phone       string
	Date        string
	TimeSlot    string
	Reason      string
}

// BookingForm books an appointment with one doctor. Fields stay intact after
// a failed submission so the patient can retry; a successful submission
// resets them, closes the hosting dialog and raises a success notification.
type BookingForm struct {
	doctor     entity.Doctor
	baseURL    string
	httpClient *http.Client
	validator  *validator.CustomValidator
	notifier   Notifier
	onClose    func()
	state      State

	Fields Fields
}

func NewBookingForm(doctor entity.Doctor, baseURL string, notifier Notifier, onClose func()) *BookingForm {
	return &BookingForm{
		doctor:     doctor,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		validator:  validator.NewValidator(),
		notifier:   notifier,
		onClose:    onClose,
		state:      StateEditing,
	}
}

func (f *BookingForm) State() State {
	return f.state
}

// MinDate is the earliest selectable appointment date: today.
func (f *BookingForm) MinDate() string {
	return time.Now().Format("2006-01-02")
}

// CanSubmit reports whether the submit action is enabled. It is the
// client-side gate: all required fields present, a well-formed email, no
// past date, and a time slot the doctor actually offers.
func (f *BookingForm) CanSubmit() bool {
	if err := f.validator.Validate(f.buildRequest()); err != nil {
		return false
	}
	if f.Fields.Date < f.MinDate() {
		return false
	}
	return f.doctor.HasSlot(f.Fields.TimeSlot)
}

// ValidationErrors returns per-field messages for the current inputs, empty
// when every required field passes.
func (f *BookingForm) ValidationErrors() map[string]string {
	if err := f.validator.Validate(f.buildRequest()); err != nil {
		return f.validator.FormatValidationErrors(err)
	}
	return map[string]string{}
}

// Submit posts the booking. While the gate fails, Submit is inert: no
// request is sent and the form stays in editing state.
func (f *BookingForm) Submit(ctx context.Context) (*dto.AppointmentResponse, error) {
	if f.state == StateSubmitting {
		return nil, ErrSubmitInFlight
	}
	if !f.CanSubmit() {
		return nil, ErrFormIncomplete
	}

	f.state = StateSubmitting
	defer func() { f.state = StateEditing }()

	body, err := json.Marshal(f.buildRequest())
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/appointments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.notifyFailure()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		f.notifyFailure()
		return nil, fmt.Errorf("%w: unexpected status %d", ErrBookingFailed, resp.StatusCode)
	}

	var appointment dto.AppointmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		f.notifyFailure()
		return nil, err
	}

	if f.notifier != nil {
		f.notifier.Success(
			"Appointment Booked Successfully!",
			fmt.Sprintf("Your appointment with Dr. %s has been confirmed.", f.doctor.Name),
		)
	}
	if f.onClose != nil {
		f.onClose()
	}
	f.Fields = Fields{}

	return &appointment, nil
}

func (f *BookingForm) notifyFailure() {
	if f.notifier != nil {
		f.notifier.Failure(
			"Booking Failed",
			"There was an error booking your appointment. Please try again.",
		)
	}
}

// buildRequest merges the patient input with the doctor-derived values the
// form always sends along (id, name, fee).
func (f *BookingForm) buildRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		DoctorID:        f.doctor.ID,
		DoctorName:      f.doctor.Name,
		PatientName:     f.Fields.PatientName,
		Email:           f.Fields.Email,
		Phone:           f.Fields.Phone,
		Date:            f.Fields.Date,
		TimeSlot:        f.Fields.TimeSlot,
		Reason:          f.Fields.Reason,
		ConsultationFee: f.doctor.ConsultationFee,
	}
}
