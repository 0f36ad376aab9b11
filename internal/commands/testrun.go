package commands

import "github.com/zjrosen/knowncmd/internal/bus"

var testRuns = newSet("testing")

var (
	RevealTestInExplorer = bus.Declare1[TestItem, bus.Void](testRuns,
		"vscode.revealTestInExplorer", "Reveals a test instance in the explorer.",
		bus.Param("testItem", "A VS Code TestItem"))

	StartContinuousTestRun = bus.Declare2[TestRunProfile, []TestItem, bus.Void](testRuns,
		"vscode.startContinuousTestRun", "Starts running the given tests with continuous run mode.",
		bus.Param("testProfile", "The test profile to run with"),
		bus.Param("testItems", "An array of tests to run"))

	StopContinuousTestRun = bus.Declare1[[]TestItem, bus.Void](testRuns,
		"vscode.stopContinuousTestRun", "Stops running the given tests with continuous run mode.",
		bus.Param("testItems", "An array of tests to stop"))
)
