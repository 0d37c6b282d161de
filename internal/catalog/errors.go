package catalog

import "errors"

var (
	ErrUnknownUserType       = errors.New("unknown user type")
	ErrUserExists            = errors.New("user already exists")
	ErrUnknownUser           = errors.New("user does not exist")
	ErrNotAnAdmin            = errors.New("admin does not exist")
	ErrWrongPassword         = errors.New("invalid authentication")
	ErrIsAdmin               = errors.New("admins cannot review shows")
	ErrShowExists            = errors.New("show already exists")
	ErrUnknownShow           = errors.New("show does not exist")
	ErrAlreadyReviewed       = errors.New("user already reviewed show")
	ErrUnknownClassification = errors.New("unknown classification")
)
