package generators

import "qseries/internal/qerr"

func domainErr(op, param, msg string) error {
	return qerr.Domain(op, param, msg)
}
