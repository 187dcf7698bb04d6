package check_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"golang.org/x/sys/unix"

	"git.ophivana.moe/security/rooter/internal/check"
)

func TestAbsoluteError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string

		err error
		cmp error
		ok  bool
	}{
		{"EINVAL", new(check.AbsoluteError), unix.EINVAL, true},
		{"not EINVAL", new(check.AbsoluteError), unix.EBADE, false},
		{"ne val", new(check.AbsoluteError), &check.AbsoluteError{Pathname: "etc"}, false},
		{"equals", &check.AbsoluteError{Pathname: "etc"}, &check.AbsoluteError{Pathname: "etc"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := errors.Is(tc.err, tc.cmp); got != tc.ok {
				t.Errorf("Is: %v, want %v", got, tc.ok)
			}
		})
	}

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		want := `path "python" is not absolute`
		if got := (&check.AbsoluteError{Pathname: "python"}).Error(); got != want {
			t.Errorf("Error: %q, want %q", got, want)
		}
	})
}

func TestNewAbs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string

		pathname string
		want     *check.Absolute
		wantErr  error
	}{
		{"zero", "", nil, &check.AbsoluteError{Pathname: ""}},
		{"good", "/home/pi/.virtualenvs/sparkfun/bin/python", check.MustAbs("/home/pi/.virtualenvs/sparkfun/bin/python"), nil},
		{"relative", "bin/python", nil, &check.AbsoluteError{Pathname: "bin/python"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := check.NewAbs(tc.pathname)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("NewAbs: %#v, want %#v", got, tc.want)
			}
			if !reflect.DeepEqual(err, tc.wantErr) {
				t.Errorf("NewAbs: error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	t.Run("must", func(t *testing.T) {
		t.Parallel()

		defer func() {
			wantPanic := &check.AbsoluteError{Pathname: "python"}
			if r := recover(); !reflect.DeepEqual(r, wantPanic) {
				t.Errorf("MustAbs: panic = %v; want %v", r, wantPanic)
			}
		}()

		check.MustAbs("python")
	})
}

func TestAbsoluteString(t *testing.T) {
	t.Parallel()

	t.Run("passthrough", func(t *testing.T) {
		t.Parallel()

		pathname := "/home/pi/sparkfun-avc"
		if got := check.MustAbs(pathname).String(); got != pathname {
			t.Errorf("String: %q, want %q", got, pathname)
		}
	})

	t.Run("zero", func(t *testing.T) {
		t.Parallel()

		defer func() {
			wantPanic := "attempted use of zero Absolute"
			if r := recover(); r != wantPanic {
				t.Errorf("String: panic = %v, want %v", r, wantPanic)
			}
		}()

		panic(new(check.Absolute).String())
	})
}

func TestAbsoluteJSON(t *testing.T) {
	t.Parallel()

	t.Run("marshal", func(t *testing.T) {
		t.Parallel()

		want := `{"target":"/usr/bin/python"}`
		if got, err := json.Marshal(struct {
			Target *check.Absolute `json:"target"`
		}{check.MustAbs("/usr/bin/python")}); err != nil {
			t.Fatalf("Marshal: error = %v", err)
		} else if string(got) != want {
			t.Errorf("Marshal: %s, want %s", got, want)
		}
	})
}
