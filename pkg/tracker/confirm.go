package tracker

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(question string) (bool, error)

func (f ConfirmFunc) Confirm(question string) (bool, error) { return f(question) }

// Always answers every question with the same value.
type Always bool

func (a Always) Confirm(string) (bool, error) { return bool(a), nil }

// ResetQuestion is the prompt shown before Reset wipes the session.
const ResetQuestion = "Clear everything?"
