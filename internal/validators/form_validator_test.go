// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bank-shell/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validLogin() models.LoginForm {
	return models.LoginForm{Email: "a@b.com", Password: "secret1"}
}

func validRegistration() models.RegistrationForm {
	return models.RegistrationForm{
		FullName:        "Jane Doe",
		Email:           "j@d.com",
		Phone:           "+34 600 123 456",
		Password:        "pw",
		ConfirmPassword: "pw",
	}
}

// ---------------------------------------------------------------------------
// Pure predicates
// ---------------------------------------------------------------------------

func TestCanSubmitLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{name: "empty email", email: "", password: "x", want: false},
		{name: "empty password", email: "a@b.com", password: "", want: false},
		{name: "both empty", email: "", password: "", want: false},
		{name: "both filled", email: "a@b.com", password: "secret1", want: true},
		{name: "whitespace counts", email: " ", password: "\t", want: true},
		{name: "multibyte", email: "josé@ñandú.es", password: "contraseña", want: true},
		{name: "no email shape required", email: "not-an-email", password: "x", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanSubmitLogin(tt.email, tt.password))
		})
	}
}

func TestCanSubmitRegistration(t *testing.T) {
	full := []string{"Jane Doe", "j@d.com", "123", "pw", "pw"}

	t.Run("all empty", func(t *testing.T) {
		assert.False(t, CanSubmitRegistration("", "", "", "", ""))
	})

	t.Run("all filled", func(t *testing.T) {
		assert.True(t, CanSubmitRegistration(full[0], full[1], full[2], full[3], full[4]))
	})

	t.Run("password mismatch is not checked", func(t *testing.T) {
		assert.True(t, CanSubmitRegistration("Jane Doe", "j@d.com", "123", "pw", "different"))
	})

	t.Run("whitespace counts", func(t *testing.T) {
		assert.True(t, CanSubmitRegistration(" ", " ", " ", " ", " "))
	})

	// each field blanked on its own must close the gate
	for i := range full {
		values := append([]string(nil), full...)
		values[i] = ""
		t.Run("blank field "+registrationFields[i], func(t *testing.T) {
			assert.False(t, CanSubmitRegistration(values[0], values[1], values[2], values[3], values[4]))
		})
	}
}

func TestCanSubmit_Idempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, CanSubmitLogin("a@b.com", "secret1"))
		assert.False(t, CanSubmitLogin("", "secret1"))
		assert.False(t, CanSubmitRegistration("", "", "", "", ""))
	}
}

func TestEmailShape(t *testing.T) {
	assert.True(t, EmailShape("a@b.com"))
	assert.True(t, EmailShape("jane.doe+bank@example.es"))
	assert.False(t, EmailShape(""))
	assert.False(t, EmailShape(" "))
	assert.False(t, EmailShape("jane"))
	assert.False(t, EmailShape("jane@"))
}

// ---------------------------------------------------------------------------
// FormValidator dispatch
// ---------------------------------------------------------------------------

func TestFormValidator_Dispatch(t *testing.T) {
	v := NewFormValidator(false)
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("LoginForm value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validLogin()))
	})

	t.Run("LoginForm pointer", func(t *testing.T) {
		f := validLogin()
		require.NoError(t, v.Validate(ctx, &f))
	})

	t.Run("RegistrationForm value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validRegistration()))
	})

	t.Run("RegistrationForm pointer", func(t *testing.T) {
		f := validRegistration()
		require.NoError(t, v.Validate(ctx, &f))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validLogin(), FieldPhone), ErrUnknownField)
		require.ErrorIs(t, v.Validate(ctx, validRegistration(), "nickname"), ErrUnknownField)
	})
}

func TestFormValidator_Login(t *testing.T) {
	v := NewFormValidator(false)
	ctx := context.Background()

	t.Run("empty email", func(t *testing.T) {
		f := validLogin()
		f.Email = ""
		require.ErrorIs(t, v.Validate(ctx, f), ErrEmptyEmail)
	})

	t.Run("empty password", func(t *testing.T) {
		f := validLogin()
		f.Password = ""
		require.ErrorIs(t, v.Validate(ctx, f), ErrEmptyPassword)
	})

	t.Run("first failing rule wins", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.LoginForm{}), ErrEmptyEmail)
	})

	t.Run("scoped to password only", func(t *testing.T) {
		f := models.LoginForm{Password: "x"}
		require.NoError(t, v.Validate(ctx, f, FieldPassword))
	})

	t.Run("malformed email passes by default", func(t *testing.T) {
		f := models.LoginForm{Email: "nope", Password: "x"}
		require.NoError(t, v.Validate(ctx, f))
	})
}

func TestFormValidator_Registration(t *testing.T) {
	v := NewFormValidator(false)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.RegistrationForm)
		want   error
	}{
		{name: "full name", mutate: func(f *models.RegistrationForm) { f.FullName = "" }, want: ErrEmptyFullName},
		{name: "email", mutate: func(f *models.RegistrationForm) { f.Email = "" }, want: ErrEmptyEmail},
		{name: "phone", mutate: func(f *models.RegistrationForm) { f.Phone = "" }, want: ErrEmptyPhone},
		{name: "password", mutate: func(f *models.RegistrationForm) { f.Password = "" }, want: ErrEmptyPassword},
		{name: "confirm", mutate: func(f *models.RegistrationForm) { f.ConfirmPassword = "" }, want: ErrEmptyConfirmPassword},
	}

	for _, tc := range cases {
		t.Run("empty "+tc.name, func(t *testing.T) {
			f := validRegistration()
			tc.mutate(&f)
			require.ErrorIs(t, v.Validate(ctx, f), tc.want)
			assert.False(t, v.Eligible(ctx, f))
		})
	}

	t.Run("mismatch passes by default", func(t *testing.T) {
		f := validRegistration()
		f.ConfirmPassword = "different"
		require.NoError(t, v.Validate(ctx, f))
		assert.True(t, v.Eligible(ctx, f))
	})

	t.Run("mismatch caught when asked for", func(t *testing.T) {
		f := validRegistration()
		f.ConfirmPassword = "different"
		require.ErrorIs(t, v.Validate(ctx, f, FieldPasswordsMatch), ErrPasswordsMismatch)
	})
}

func TestFormValidator_Strict(t *testing.T) {
	v := NewFormValidator(true)
	ctx := context.Background()
	require.True(t, v.Strict())

	t.Run("login malformed email", func(t *testing.T) {
		f := models.LoginForm{Email: "nope", Password: "x"}
		require.ErrorIs(t, v.Validate(ctx, f), ErrInvalidEmailFormat)
	})

	t.Run("login empty still reported first", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.LoginForm{}), ErrEmptyEmail)
	})

	t.Run("registration mismatch", func(t *testing.T) {
		f := validRegistration()
		f.ConfirmPassword = "different"
		require.ErrorIs(t, v.Validate(ctx, f), ErrPasswordsMismatch)
	})

	t.Run("registration malformed email", func(t *testing.T) {
		f := validRegistration()
		f.Email = "jane"
		require.ErrorIs(t, v.Validate(ctx, f), ErrInvalidEmailFormat)
	})

	t.Run("registration valid", func(t *testing.T) {
		assert.True(t, v.Eligible(ctx, validRegistration()))
	})

	t.Run("phone shape never enforced", func(t *testing.T) {
		f := validRegistration()
		f.Phone = "call me"
		require.NoError(t, v.Validate(ctx, f))
	})
}
