package sheets

import _ "embed"

//go:embed apps_script.gs
var appsScript string

// Script returns the Apps Script source the shop deploys as the sheet's
// web app. Its doGet/doPost are the other half of this client's contract.
func Script() string {
	return appsScript
}
