// Command voiceline is a terminal front end for a realtime voice agent
// session: it connects to the realtime API, renders the live transcript
// and lets the operator type, interrupt, switch agents and drive
// push-to-talk turns.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	session "github.com/benkoska/voiceline-core/core"
	"github.com/benkoska/voiceline-core/core/agents"
	"github.com/benkoska/voiceline-core/core/events"
	"github.com/benkoska/voiceline-core/core/realtime"
)

func main() {
	modelName := flag.String("model", "", "realtime model override")
	sessionEndpoint := flag.String("session-endpoint", "", "HTTP endpoint that mints the ephemeral client secret")
	pushToTalk := flag.Bool("push-to-talk", false, "start in push-to-talk mode")
	flag.Parse()

	var clientOpts []realtime.ClientOption
	if *modelName != "" {
		clientOpts = append(clientOpts, realtime.WithModel(*modelName))
	}
	if *sessionEndpoint != "" {
		clientOpts = append(clientOpts, realtime.WithSessionEndpoint(*sessionEndpoint))
	}
	client := realtime.NewClient(clientOpts...)

	roster := defaultRoster()

	// The program handle is assigned after the session is built; by the
	// time any callback fires the program is already running.
	var program *tea.Program

	sess, err := session.NewSession(roster,
		session.WithTransport(client),
		session.WithPushToTalk(*pushToTalk),
		session.WithTranscriptCallback(func(items []session.TranscriptItem) {
			if program != nil {
				program.Send(transcriptMsg(items))
			}
		}),
		session.WithAgentChangedCallback(func(agent agents.Agent) {
			if program != nil {
				program.Send(agentMsg(agent))
			}
		}),
		session.WithConnectionStateCallback(func(state events.ConnectionState) {
			if program != nil {
				program.Send(connectionMsg(state))
			}
		}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "voiceline:", err)
		os.Exit(1)
	}

	program = tea.NewProgram(newModel(sess, roster), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "voiceline:", err)
		os.Exit(1)
	}
	sess.Disconnect()
}

func defaultRoster() agents.Roster {
	type orderLookupParams struct {
		OrderID string `json:"order_id" jsonschema:"description=The order number the caller provides"`
	}

	return agents.Roster{
		{
			Name:              "Greeter",
			PublicDescription: "Greets callers and routes them to the right department.",
			Instructions: "You are a friendly front-desk agent. Greet the caller, " +
				"find out what they need and transfer them to the right department.",
			Voice:    "sage",
			Handoffs: []string{"Sales", "Support"},
		},
		{
			Name:              "Sales",
			PublicDescription: "Handles orders, upgrades and pricing questions.",
			Instructions: "You help callers buy products and answer pricing " +
				"questions. Hand the caller back to Support for technical issues.",
			Voice:    "ash",
			Handoffs: []string{"Support"},
		},
		{
			Name:              "Support",
			PublicDescription: "Resolves technical issues and order problems.",
			Instructions: "You resolve technical issues. Look up the caller's " +
				"order when they mention one.",
			Voice: "coral",
			Tools: []agents.Tool{
				agents.NewTool("lookup_order", "Look up the status of an order.", orderLookupParams{}),
			},
			Handoffs: []string{"Sales"},
		},
	}
}
