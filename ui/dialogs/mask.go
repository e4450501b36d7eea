package dialogs

import (
	"fmt"
	"strconv"

	"pcb-coil/internal/photomask"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MaskDialog asks for photomask export options.
type MaskDialog struct {
	opts   photomask.Options
	window fyne.Window

	dpiEntry      *widget.Entry
	marginEntry   *widget.Entry
	mirrorCheck   *widget.Check
	negativeCheck *widget.Check

	// Callback
	onAccept func(photomask.Options)
}

// NewMaskDialog creates a photomask options dialog.
func NewMaskDialog(opts photomask.Options, window fyne.Window, onAccept func(photomask.Options)) *MaskDialog {
	return &MaskDialog{
		opts:     opts,
		window:   window,
		onAccept: onAccept,
	}
}

// Show displays the dialog.
func (d *MaskDialog) Show() {
	d.dpiEntry = widget.NewEntry()
	d.dpiEntry.SetText(strconv.FormatFloat(d.opts.DPI, 'g', -1, 64))
	d.marginEntry = widget.NewEntry()
	d.marginEntry.SetText(strconv.FormatFloat(d.opts.Margin, 'g', -1, 64))
	d.mirrorCheck = widget.NewCheck("", nil)
	d.mirrorCheck.SetChecked(d.opts.Mirror)
	d.negativeCheck = widget.NewCheck("", nil)
	d.negativeCheck.SetChecked(d.opts.Negative)

	form := widget.NewForm(
		widget.NewFormItem("DPI", d.dpiEntry),
		widget.NewFormItem("Margin (mm)", d.marginEntry),
		widget.NewFormItem("Mirror", d.mirrorCheck),
		widget.NewFormItem("Negative", d.negativeCheck),
	)

	dlg := dialog.NewCustomConfirm("Photomask Export", "Export", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		opts, err := d.options()
		if err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if d.onAccept != nil {
			d.onAccept(opts)
		}
	}, d.window)
	dlg.Resize(fyne.NewSize(360, 260))
	dlg.Show()
}

func (d *MaskDialog) options() (photomask.Options, error) {
	opts := d.opts
	dpi, err := strconv.ParseFloat(d.dpiEntry.Text, 64)
	if err != nil || dpi <= 0 {
		return opts, fmt.Errorf("DPI must be a positive number")
	}
	margin, err := strconv.ParseFloat(d.marginEntry.Text, 64)
	if err != nil || margin < 0 {
		return opts, fmt.Errorf("margin must be a non-negative number")
	}
	opts.DPI = dpi
	opts.Margin = margin
	opts.Mirror = d.mirrorCheck.Checked
	opts.Negative = d.negativeCheck.Checked
	return opts, nil
}
