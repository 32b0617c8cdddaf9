// Package console adapts a terminal to the menu.Prompter and menu.Notifier
// interfaces.
//
// LinePrompter writes the prompt text and reads one line of input per call;
// end of input counts as cancellation. TextNotifier prints notifications,
// colored by kind with github.com/fatih/color. JSONNotifier writes one JSON
// object per notification for machine consumption (--json).
package console
