package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoActiveConfigs    = errors.New("no active search configurations")
	ErrEmptyKnowledgeBase = errors.New("knowledge base is empty")
	ErrApplicationExists  = errors.New("application already exists for this job")
)
