package main

import "github.com/gotk3/gotk3/gtk"

// passwordEntryDialog prompts for a passphrase in a modal dialog, grounded
// in the teacher's own passwordEntryDialog call site in controller.go
// (never checked in on its own, so rebuilt here against the gotk3 API).
func passwordEntryDialog(parent *gtk.Window, title string) (string, bool) {
	dlg, err := gtk.DialogNewWithButtons(title, parent, gtk.DIALOG_MODAL,
		[]interface{}{"Cancel", gtk.RESPONSE_CANCEL, "OK", gtk.RESPONSE_OK})
	if err != nil {
		return "", false
	}
	defer dlg.Destroy()

	entry, err := gtk.EntryNew()
	if err != nil {
		return "", false
	}
	entry.SetVisibility(false)

	content, err := dlg.GetContentArea()
	if err != nil {
		return "", false
	}
	content.Add(entry)
	dlg.ShowAll()

	resp := dlg.Run()
	if resp != gtk.RESPONSE_OK {
		return "", false
	}
	text, err := entry.GetText()
	if err != nil {
		return "", false
	}
	return text, true
}

func showResetWarningDialog(ctx *WindowCtx) {
	dlg := gtk.MessageDialogNew(ctx.win, gtk.DIALOG_MODAL, gtk.MESSAGE_WARNING,
		gtk.BUTTONS_OK_CANCEL, "This clears the notepad and loaded key. Continue?")
	defer dlg.Destroy()
	if dlg.Run() == gtk.RESPONSE_OK {
		ctx.setText("")
		ctx.loadedKP = nil
		ctx.updateStatus("reset")
	}
}
