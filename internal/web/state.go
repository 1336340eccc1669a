package web

// FormStatus is one step of a form's life:
// idle -> submitting -> success|failure -> idle.
type FormStatus string

const (
	StatusIdle       FormStatus = "idle"
	StatusSubmitting FormStatus = "submitting"
	StatusSuccess    FormStatus = "success"
	StatusFailure    FormStatus = "failure"
)

// FormState is the render state of one form. Every request starts from a
// fresh idle FormState and the submit control is never disabled, so
// overlapping submissions each run their own state machine.
type FormState struct {
	Status FormStatus
	Notice string
}

func (s *FormState) Submit() {
	s.Status = StatusSubmitting
	s.Notice = ""
}

func (s *FormState) Succeed(notice string) {
	s.Status = StatusSuccess
	s.Notice = notice
}

func (s *FormState) Fail(notice string) {
	s.Status = StatusFailure
	s.Notice = notice
}

func (s FormState) Failed() bool {
	return s.Status == StatusFailure
}
