package services

// Fake implementations for tests. They answer dialogs synchronously
// with canned paths and record everything shown to the user.

// FakeDialogs answers every dialog with the configured path.
type FakeDialogs struct {
	OpenPDFPath string
	SavePDFPath string
	ImagePath   string
}

func (f *FakeDialogs) AskOpenPDF(cb func(string)) { cb(f.OpenPDFPath) }
func (f *FakeDialogs) AskSavePDF(cb func(string)) { cb(f.SavePDFPath) }
func (f *FakeDialogs) AskImage(cb func(string))   { cb(f.ImagePath) }

// FakeMessages records notifications.
type FakeMessages struct {
	Infos  []string
	Errors []string
}

func (f *FakeMessages) Info(title, message string)  { f.Infos = append(f.Infos, title+": "+message) }
func (f *FakeMessages) Error(title, message string) { f.Errors = append(f.Errors, title+": "+message) }

// FakeBrowser records opened URLs.
type FakeBrowser struct {
	URLs []string
	Err  error
}

func (f *FakeBrowser) OpenURL(rawURL string) error {
	if f.Err != nil {
		return f.Err
	}
	f.URLs = append(f.URLs, rawURL)
	return nil
}

// FakeFileOpener records opened paths.
type FakeFileOpener struct {
	Paths []string
	Err   error
}

func (f *FakeFileOpener) OpenPath(path string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Paths = append(f.Paths, path)
	return nil
}
