package service

import "github.com/MKhiriev/go-registry-manager/models"

// AddOutcome is the result of an add action.
type AddOutcome int

const (
	// AddFailed means the action did not complete; AddResult.Err says why.
	AddFailed AddOutcome = iota
	// AddCreated means a new identity was registered.
	AddCreated
	// AddAlreadyExisted means the id was taken and the existing record was
	// looked up instead.
	AddAlreadyExisted
)

func (o AddOutcome) String() string {
	switch o {
	case AddCreated:
		return "created"
	case AddAlreadyExisted:
		return "already_existed"
	default:
		return "failed"
	}
}

// AddResult is returned by DeviceService.Add.
//
// Device is the created or existing record. It is nil when the registry
// returned no record, e.g. the existing device was removed between the
// create attempt and the lookup.
type AddResult struct {
	Outcome AddOutcome
	Device  *models.Device
	Err     error
}

// RemoveOutcome is the result of a remove action.
type RemoveOutcome int

const (
	RemoveFailed RemoveOutcome = iota
	RemoveRemoved
	RemoveNotFound
)

func (o RemoveOutcome) String() string {
	switch o {
	case RemoveRemoved:
		return "removed"
	case RemoveNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// RemoveResult is returned by DeviceService.Remove.
type RemoveResult struct {
	Outcome RemoveOutcome
	Err     error
}
