package diffusion

import (
	"fmt"
	"strings"
)

// Model identifies a diffusion algorithm
type Model string

const (
	ModelICM       Model = "icm"
	ModelCascade   Model = "cascade"
	ModelCNIM      Model = "cnim"
	ModelPotential Model = "potential"
)

// Models lists every supported model
func Models() []Model {
	return []Model{ModelICM, ModelCascade, ModelCNIM, ModelPotential}
}

// ParseModel converts a case-insensitive model name
func ParseModel(s string) (Model, error) {
	for _, m := range Models() {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// Anchor selects the node CNIM compares against the chain tail when
// computing the common-neighbors index.
type Anchor int

const (
	// AnchorPrevious uses the second-to-last chain element
	AnchorPrevious Anchor = iota
	// AnchorOrigin uses the first chain element
	AnchorOrigin
)

func (a Anchor) String() string {
	switch a {
	case AnchorPrevious:
		return "previous"
	case AnchorOrigin:
		return "origin"
	default:
		return fmt.Sprintf("anchor(%d)", int(a))
	}
}

// ParseAnchor converts "previous" or "origin"; the empty string is
// AnchorPrevious.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(s) {
	case "", "previous":
		return AnchorPrevious, nil
	case "origin":
		return AnchorOrigin, nil
	default:
		return 0, fmt.Errorf("%w: unknown anchor %q", ErrInvalidOptions, s)
	}
}

// RoundPolicy decides what a failed potential comparison does
type RoundPolicy int

const (
	// PolicyHaltOnFailure is the default. It stops the whole simulation at
	// the first comparison where the spreading potential does not exceed
	// the activation potential. Activations made earlier in the round are
	// kept.
	PolicyHaltOnFailure RoundPolicy = iota
	// PolicySkipFailures only excludes the failed pair; rounds repeat until
	// one activates nothing. A failure never cuts a round short.
	PolicySkipFailures
)

func (p RoundPolicy) String() string {
	switch p {
	case PolicyHaltOnFailure:
		return "halt-on-failure"
	case PolicySkipFailures:
		return "skip-failures"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts "halt-on-failure" or "skip-failures"; the empty
// string is PolicyHaltOnFailure.
func ParsePolicy(s string) (RoundPolicy, error) {
	switch strings.ToLower(s) {
	case "", "halt-on-failure", "halt":
		return PolicyHaltOnFailure, nil
	case "skip-failures", "skip":
		return PolicySkipFailures, nil
	default:
		return 0, fmt.Errorf("%w: unknown round policy %q", ErrInvalidOptions, s)
	}
}

func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Anchor) UnmarshalText(text []byte) error {
	parsed, err := ParseAnchor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (p RoundPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *RoundPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// RandomSource supplies uniform draws in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}
