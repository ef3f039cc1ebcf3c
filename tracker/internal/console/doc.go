// Package console is a line-oriented front end for a tracker session. It
// reads one command per line and renders the engine's results as text.
//
// Commands:
//
//	lmp YYYY-MM-DD                  set the last menstrual period
//	add <weight>, <bp>, <glucose>   record a reading, e.g. add 65.5, 120/80, 95
//	dashboard                       week, milestone, latest reading and alerts
//	history                         all readings as a table
//	export                          all readings as CSV
//	review                          readings needing clinical review (doctors)
//	help                            list commands
//	logout                          end the session
package console
