// Package services abstracts the host facilities the application needs
// beyond PDF handling: file dialogs, message boxes, the default browser
// and the default document viewer. Each capability is a small interface
// so the core logic can be exercised with the fakes in this package.
package services

// FileDialogs asks the user for file paths. Dialogs are asynchronous;
// the callback receives "" when the user cancels.
type FileDialogs interface {
	AskOpenPDF(cb func(path string))
	AskSavePDF(cb func(path string))
	AskImage(cb func(path string))
}

// Messages shows modal notifications.
type Messages interface {
	Info(title, message string)
	Error(title, message string)
}

// Browser opens a URL in the user's default browser.
type Browser interface {
	OpenURL(rawURL string) error
}

// FileOpener opens a file in the platform's default viewer.
type FileOpener interface {
	OpenPath(path string) error
}
