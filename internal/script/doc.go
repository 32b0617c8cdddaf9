// Package script replays canned answers from a YAML file as a
// menu.Prompter, so a calculator session can run unattended.
//
// File format:
//
//	responses:
//	  - "1"      # add
//	  - "4"
//	  - "5"
//	  - null     # cancel the next prompt
//
// A null entry is a cancelled prompt. Running past the end of the list is
// also a cancellation, which ends the session gracefully.
package script
