package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToasterWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	toaster := &Toaster{Out: &buf}

	toaster.Toast("Network error")
	assert.Contains(t, buf.String(), "Network error")
}

func TestToasterNavigate(t *testing.T) {
	toaster := NewToaster(false)

	// dropped, nothing registered yet
	toaster.NavigateTo("/pages/user/login")

	var routes []string
	toaster.SetNavigateFn(func(route string) {
		routes = append(routes, route)
	})
	toaster.NavigateTo("/pages/user/login")

	assert.Equal(t, []string{"/pages/user/login"}, routes)
}
