package formux

import (
	"fmt"
	"net/url"
	"sync"
)

// FilterForm is a GET form whose select fields submit the form as soon as they change,
// like the job and blog listing filters.
type FilterForm struct {
	action string
	submit func(target string)

	mu     sync.Mutex
	fields url.Values
}

func NewFilterForm(action string, submit func(target string)) *FilterForm {
	return &FilterForm{action: action, submit: submit, fields: url.Values{}}
}

// Change records a new value for field and submits the form.
func (f *FilterForm) Change(field, value string) error {
	f.mu.Lock()
	if value == "" {
		f.fields.Del(field)
	} else {
		f.fields.Set(field, value)
	}
	target, err := f.targetLocked()
	f.mu.Unlock()
	if err != nil {
		return err
	}
	if f.submit != nil {
		f.submit(target)
	}
	return nil
}

// Target returns the URL the form would submit to with the current values.
func (f *FilterForm) Target() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.targetLocked()
}

func (f *FilterForm) targetLocked() (string, error) {
	u, err := url.Parse(f.action)
	if err != nil {
		return "", fmt.Errorf("invalid form action: %w", err)
	}
	u.RawQuery = f.fields.Encode()
	return u.String(), nil
}
