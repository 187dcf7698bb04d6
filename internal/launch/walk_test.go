package launch

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"golang.org/x/sys/unix"
)

// mapFS implements [LinkFS] over a fixed set of files and symbolic links.
type mapFS struct {
	files map[string]*unix.Stat_t
	links map[string]string
}

func (fsys mapFS) Lstat(pathname string) (*unix.Stat_t, error) {
	if _, ok := fsys.links[pathname]; ok {
		return &unix.Stat_t{Mode: unix.S_IFLNK | 0777, Uid: 1000}, nil
	}
	if st, ok := fsys.files[pathname]; ok {
		return st, nil
	}
	return nil, unix.ENOENT
}

func (fsys mapFS) Readlink(pathname string) (string, error) {
	if target, ok := fsys.links[pathname]; ok {
		return target, nil
	}
	return "", &os.PathError{Op: "readlink", Path: pathname, Err: unix.EINVAL}
}

func TestCheckPath(t *testing.T) {
	t.Parallel()

	var (
		rootDir = &unix.Stat_t{Mode: unix.S_IFDIR | 0755}
		userDir = &unix.Stat_t{Mode: unix.S_IFDIR | 0755, Uid: 1000, Gid: 1000}
		openDir = &unix.Stat_t{Mode: unix.S_IFDIR | 0777}
		file    = &unix.Stat_t{Mode: unix.S_IFREG | 0755}
	)

	fsys := mapFS{map[string]*unix.Stat_t{
		"/":                                  rootDir,
		"/usr":                               rootDir,
		"/usr/bin":                           rootDir,
		"/usr/bin/python3":                   file,
		"/usr/local":                         rootDir,
		"/usr/local/bin":                     rootDir,
		"/home":                              rootDir,
		"/home/pi":                           userDir,
		"/home/pi/.virtualenvs":              userDir,
		"/home/pi/.virtualenvs/sparkfun":     userDir,
		"/home/pi/.virtualenvs/sparkfun/bin": userDir,
		"/opt":                               openDir,
		"/opt/python":                        rootDir,
		"/opt/python/bin":                    rootDir,
		"/opt/python/bin/python3":            file,
	}, map[string]string{
		"/bin":                                      "usr/bin",
		"/usr/bin/python":                           "python3",
		"/usr/local/bin/python":                     "../../bin/python3",
		"/home/pi/.virtualenvs/sparkfun/bin/python": "/usr/bin/python3",
		"/loop":                                     "/loop",
	}}

	testCases := []struct {
		name     string
		pathname string
		want     error
	}{
		{"protected", "/usr/bin/python3", nil},
		{"trailing separator", "/usr/bin/python3/", nil},
		{"dot", "/usr/./bin/python3", nil},
		{"relative link", "/usr/bin/python", nil},
		{"link through parent", "/usr/local/bin/python", nil},
		{"linked ancestor", "/bin/python3", nil},

		{"user virtualenv", "/home/pi/.virtualenvs/sparkfun/bin/python", errors.Join(
			&TargetError{"/home/pi", ReasonNotRootOwned},
			&TargetError{"/home/pi/.virtualenvs", ReasonNotRootOwned},
			&TargetError{"/home/pi/.virtualenvs/sparkfun", ReasonNotRootOwned},
			&TargetError{"/home/pi/.virtualenvs/sparkfun/bin", ReasonNotRootOwned},
		)},

		{"writable ancestor", "/opt/python/bin/python3", errors.Join(
			&TargetError{"/opt", ReasonGroupWritable},
			&TargetError{"/opt", ReasonOtherWritable},
		)},

		{"missing", "/usr/bin/python4", errors.Join(
			&os.PathError{Op: "lstat", Path: "/usr/bin/python4", Err: unix.ENOENT},
		)},

		{"missing after violation", "/opt/python/lib/python3", errors.Join(
			&TargetError{"/opt", ReasonGroupWritable},
			&TargetError{"/opt", ReasonOtherWritable},
			&os.PathError{Op: "lstat", Path: "/opt/python/lib", Err: unix.ENOENT},
		)},

		{"loop", "/loop", errors.Join(
			&os.PathError{Op: "readlink", Path: "/loop", Err: unix.ELOOP},
		)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if err := CheckPath(fsys, tc.pathname); !reflect.DeepEqual(err, tc.want) {
				t.Errorf("CheckPath: error = %v, want %v", err, tc.want)
			}
		})
	}

	t.Run("root", func(t *testing.T) {
		t.Parallel()

		want := &os.PathError{Op: "lstat", Path: "/", Err: unix.EACCES}
		if err := CheckPath(failFS{}, "/usr/bin/python3"); !reflect.DeepEqual(err, want) {
			t.Errorf("CheckPath: error = %v, want %v", err, want)
		}
	})
}

// failFS implements [LinkFS] and fails every call.
type failFS struct{}

func (failFS) Lstat(string) (*unix.Stat_t, error) { return nil, unix.EACCES }
func (failFS) Readlink(string) (string, error)   { return "", unix.EACCES }
