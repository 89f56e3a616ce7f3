package dataset

import (
	"fmt"

	"github.com/knadh/koanf/providers/file"
)

// Watch registers a change callback on every external dataset file. The
// callback fires once per changed file; the caller is expected to reload
// wholesale and swap the snapshot atomically. Returns without registering
// anything when only embedded defaults are in use.
func (l *Loader) Watch(onChange func()) error {
	for _, path := range l.WatchPaths() {
		f := file.Provider(path)
		if err := f.Watch(func(_ interface{}, err error) {
			if err != nil {
				return
			}
			onChange()
		}); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
	return nil
}
