// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/water4699/frost-key-chain/command/frost-cli/configuration"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	save             bool
	testnet          bool
	verbose          bool
	connectionOffset int
	e                io.Writer
	w                io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "frost-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to frost `NETWORK` [frost|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.StringFlag{
			Name:  "use-agent, u",
			Value: "",
			Usage: " executable program that returns the password `EXE`",
		},
		cli.BoolFlag{
			Name:  "zero-agent-cache, z",
			Usage: " force re-entry of agent password",
		},
		cli.IntFlag{
			Name:  "connection, c",
			Value: 0,
			Usage: " connection offset into the connections list `N`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise frost-cli configuration",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*frostkeyd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "+use existing private key `HEX`",
				},
				cli.BoolFlag{
					Name:  "new",
					Usage: "+generate a new private key",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "+use existing private key `HEX`",
				},
				cli.BoolFlag{
					Name:  "new",
					Usage: "+generate a new private key",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive-only identity from checksum hex `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "record",
			Usage:     "append a signed temperature checkpoint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "location, l",
					Value: "",
					Usage: "*reading location `STRING`",
				},
				cli.StringFlag{
					Name:  "cargo, c",
					Value: "",
					Usage: "*cargo description `STRING`",
				},
				cli.BoolFlag{
					Name:  "flagged, f",
					Usage: " mark the reading as out of safe range",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*attested ciphertext handle `HEX`",
				},
				cli.StringFlag{
					Name:  "proof, r",
					Value: "",
					Usage: "*encryption attestation `HEX`",
				},
			},
			Action: runRecord,
		},
		{
			Name:      "store",
			Usage:     "store a named sealed key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, m",
					Value: "",
					Usage: "*key name `STRING`",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*attested ciphertext handle `HEX`",
				},
				cli.StringFlag{
					Name:  "proof, r",
					Value: "",
					Usage: "*encryption attestation `HEX`",
				},
			},
			Action: runStore,
		},
		{
			Name:      "update",
			Usage:     "replace the sealed material of a key entry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "entry, e",
					Value: "",
					Usage: "*key entry id `N`",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*attested ciphertext handle `HEX`",
				},
				cli.StringFlag{
					Name:  "proof, r",
					Value: "",
					Usage: "*encryption attestation `HEX`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "checkpoint",
			Usage:     "fetch one temperature checkpoint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*checkpoint id `N`",
				},
				cli.BoolFlag{
					Name:  "payload, p",
					Usage: " also fetch the ciphertext handle",
				},
			},
			Action: runCheckpoint,
		},
		{
			Name:      "entry",
			Usage:     "fetch one key entry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, d",
					Value: "",
					Usage: "*key entry id `N`",
				},
				cli.BoolFlag{
					Name:  "payload, p",
					Usage: " also fetch the ciphertext handle",
				},
			},
			Action: runEntry,
		},
		{
			Name:      "list",
			Usage:     "list records belonging to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or checksum hex `ACCOUNT` default is global identity",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `N`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
				cli.BoolFlag{
					Name:  "keys, k",
					Usage: " list key entries instead of temperature checkpoints",
				},
			},
			Action: runList,
		},
		{
			Name:      "count",
			Usage:     "display record totals of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or checksum hex `ACCOUNT` default is global identity",
				},
			},
			Action: runCount,
		},
		{
			Name:      "audit",
			Usage:     "list every record id of one chain",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "keys, k",
					Usage: " scan key entries instead of temperature checkpoints",
				},
			},
			Action: runAudit,
		},
		{
			Name:   "stats",
			Usage:  "display temperature chain totals",
			Action: runStats,
		},
		{
			Name:      "account",
			Usage:     "display the account of a key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*hex private or uncompressed public `KEY`",
				},
			},
			Action: runAccount,
		},
		{
			Name:   "identities",
			Usage:  "display frost-cli configured identities",
			Action: runIdentities,
		},
		{
			Name:   "info",
			Usage:  "display frostkeyd status",
			Action: runNodeInfo,
		},
		{
			Name:   "password",
			Usage:  "change identity's password",
			Action: runChangePassword,
		},
		{
			Name:  "version",
			Usage: "display frost-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "frost", "live":
			network = "frost"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be frost/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		switch command {
		case "setup":
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != "frost",
				verbose: verbose,
				e:       e,
				w:       w,
			}

		case "generate", "account":
			// key handling commands work without a configuration

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != "frost",
				verbose: verbose,
				e:       e,
				w:       w,
			}

		default:

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configuration, err := configuration.GetConfiguration(file)
			if nil != err {
				return err
			}

			connectionOffset := c.GlobalInt("connection")
			if connectionOffset < 0 || connectionOffset >= len(configuration.Connections) {
				return ErrConnectionOffset
			}

			c.App.Metadata["config"] = &metadata{
				file:             file,
				config:           configuration,
				testnet:          configuration.TestNet,
				save:             false,
				verbose:          verbose,
				connectionOffset: connectionOffset,
				e:                e,
				w:                w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
