package cli

// confirmPrompt runs a standalone yes/no form on the terminal.
func confirmPrompt(title string) (bool, error) {
	var ok bool
	if err := confirmForm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}
