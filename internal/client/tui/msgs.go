package tui

import "github.com/dmitrijs2005/qwik2do/internal/client/dashboard"

type snapshotMsg struct {
	snap dashboard.Snapshot
}

type addDoneMsg struct {
	err error
}

type toggleDoneMsg struct {
	err error
}

type actionDoneMsg struct{}
