package cli

import (
	"errors"

	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
)

// selectionExit attaches the exit code for a failed job selection
func selectionExit(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pkgerrors.ErrNothingSelected):
		return pkgerrors.NewExitError(pkgerrors.ExitJobRequired, err)
	case errors.Is(err, pkgerrors.ErrJobNotFound), errors.Is(err, pkgerrors.ErrAmbiguousJob):
		return pkgerrors.NewExitError(pkgerrors.ExitJobNotFound, err)
	default:
		return err
	}
}

// listExit attaches the exit code for a failed listing
func listExit(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pkgerrors.ErrNoJobs):
		return pkgerrors.NewExitError(pkgerrors.ExitJobNotFound, err)
	case errors.Is(err, pkgerrors.ErrConfig):
		return pkgerrors.NewExitError(pkgerrors.ExitConfigRequired, err)
	default:
		return err
	}
}
