package rds

import "github.com/charmbracelet/log"

/*------------------------------------------------------------------
 *
 * Purpose:	Package-level diagnostic logger.
 *
 * Description:	Package diagnostics go through github.com/charmbracelet/log
 *		rather than a hand-rolled print shim. Nothing here is on
 *		the decode-correctness path: every condition logged is
 *		also reflected in RdsStatistics or the update mask, so a
 *		caller that never looks at the logger still gets a fully
 *		correct decode.
 *
 *------------------------------------------------------------------*/

var pkgLogger = log.Default()

// SetLogger overrides the logger used for package diagnostics.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	pkgLogger = l
}

func logger() *log.Logger {
	return pkgLogger
}
