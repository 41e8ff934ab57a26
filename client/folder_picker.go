package client

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// ErrNoFolderSelected is returned when the user dismisses the dialog.
var ErrNoFolderSelected = errors.New("no folder selected")

// FolderPicker asks the user for the folder holding the bills.
type FolderPicker interface {
	PickFolder() (string, error)
}

// DialogFolderPicker shows the native directory chooser.
type DialogFolderPicker struct {
	Title string
}

func NewDialogFolderPicker() *DialogFolderPicker {
	return &DialogFolderPicker{Title: "Select Folder with Electricity Bills"}
}

func (p *DialogFolderPicker) PickFolder() (string, error) {
	folder, err := zenity.SelectFile(zenity.Directory(), zenity.Title(p.Title))
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrNoFolderSelected
	}
	if err != nil {
		return "", fmt.Errorf("folder dialog failed: %w", err)
	}
	if folder == "" {
		return "", ErrNoFolderSelected
	}
	return folder, nil
}

// StaticFolderPicker returns a preconfigured folder, for headless runs.
type StaticFolderPicker struct {
	Folder string
}

func (p StaticFolderPicker) PickFolder() (string, error) {
	if p.Folder == "" {
		return "", ErrNoFolderSelected
	}
	return p.Folder, nil
}
