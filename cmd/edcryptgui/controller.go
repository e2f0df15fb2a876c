package main

/* Connects buttons to edcrypt package calls and relays results to the
status label, the way the teacher's controller.go wires its own four
buttons to model.go's functions. */

import (
	"encoding/hex"

	"github.com/gotk3/gotk3/gtk"

	"github.com/dustin-ray/edcrypt"
	"github.com/dustin-ray/edcrypt/internal/curve"
)

const defaultStrength = 512

// adds buttons in a factory style to the fixed context, mirroring the
// teacher's own createButtons.
func createButtons(ctx *WindowCtx) {
	labelList := []string{"Compute Hash",
		"Generate Keypair", "Sign With Key", "Verify Signature"}

	buttonList := make([]gtk.Button, len(labelList))
	for i, label := range labelList {
		btn, _ := gtk.ButtonNewWithLabel(label)
		buttonList[i] = *btn
		ctx.fixed.Put(btn, 40, 80+i*45)
	}
	ctx.buttons = &buttonList
	setupResetButton(ctx)

	buttonList[0].Connect("clicked", func() { setHash(ctx) })
	buttonList[1].Connect("clicked", func() { setKeyPair(ctx) })
	buttonList[2].Connect("clicked", func() { setSignature(ctx) })
	buttonList[3].Connect("clicked", func() { setVerify(ctx) })
}

func setupResetButton(ctx *WindowCtx) {
	reset, _ := gtk.ButtonNewWithLabel("Reset")
	reset.SetName("resetButton")
	reset.Connect("clicked", func() { showResetWarningDialog(ctx) })
	ctx.fixed.Put(reset, 40, 510)
}

// setHash replaces the notepad's text with its own hash(data, 512).
func setHash(ctx *WindowCtx) {
	digest, err := edcrypt.Hash([]byte(ctx.text()), defaultStrength)
	if err != nil {
		ctx.updateStatus(err.Error())
		return
	}
	ctx.setText(hex.EncodeToString(digest))
	ctx.updateStatus("hash computed successfully")
}

// setKeyPair derives a keypair from a passphrase prompt and holds it in
// ctx.loadedKP for the following Sign/Verify clicks.
func setKeyPair(ctx *WindowCtx) {
	pw, ok := passwordEntryDialog(ctx.win, "keypair passphrase")
	if !ok {
		ctx.updateStatus("keypair generation cancelled")
		return
	}
	kp, err := edcrypt.KeyPairNew([]byte(pw), "gui-user", curve.E521, defaultStrength)
	if err != nil {
		ctx.updateStatus(err.Error())
		return
	}
	ctx.loadedKP = kp
	ctx.updateStatus("keypair generated for curve " + kp.Curve.String())
}

// setSignature signs the notepad's contents under the loaded keypair.
func setSignature(ctx *WindowCtx) {
	if ctx.loadedKP == nil {
		ctx.updateStatus("no keypair loaded; generate one first")
		return
	}
	msg := edcrypt.NewMessage([]byte(ctx.text()))
	if err := edcrypt.Sign(msg, ctx.loadedKP, defaultStrength); err != nil {
		ctx.updateStatus(err.Error())
		return
	}
	ctx.setText(hex.EncodeToString(msg.Sig.H) + ":" + msg.Sig.Z.Text(16))
	ctx.updateStatus("signature generated")
}

// setVerify parses "h:z" out of the notepad and checks it against the
// loaded keypair's public half, prompting for the original message text
// that was signed.
func setVerify(ctx *WindowCtx) {
	if ctx.loadedKP == nil {
		ctx.updateStatus("no keypair loaded; generate one first")
		return
	}
	sig, ok := parseSignatureText(ctx.text())
	if !ok {
		ctx.updateStatus("unable to parse signature (expected h:z)")
		return
	}
	original, ok := passwordEntryDialog(ctx.win, "original signed text")
	if !ok {
		ctx.updateStatus("verification cancelled")
		return
	}

	msg := edcrypt.NewMessage([]byte(original))
	msg.Sig = sig
	if err := edcrypt.Verify(msg, ctx.loadedKP.Public(), defaultStrength); err != nil {
		ctx.updateStatus(err.Error())
		return
	}
	if *msg.OpResult {
		ctx.updateStatus("good signature from loaded key")
	} else {
		ctx.updateStatus("unable to verify signature")
	}
}
