// Command nlogctl inspects and edits the logger levels file and emits
// test records through a registry built from it.
//
//	nlogctl check [--file path]
//	nlogctl set <name> <level> [--file path]
//	nlogctl emit <logger> <level> <message> [--file path]
//
// Without --file the installation's levels file is used, located via
// $NLOG_HOME.
package main
