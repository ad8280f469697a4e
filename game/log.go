package game

import "github.com/HandyGold75/GOLib/logger"

// NewLogger logs to the file at path only. Stdout belongs to the board, so
// no verbosity level is echoed to the console.
func NewLogger(path string) *logger.Logger {
	lgr := logger.NewAbs(path)
	lgr.UseSeperators = false
	lgr.CharCountPerPart = 16
	lgr.VerboseToCLI = 99

	return lgr
}
