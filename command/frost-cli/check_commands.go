// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"

	"github.com/urfave/cli"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/command/frost-cli/configuration"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/keypair"
	"github.com/water4699/frost-key-chain/vault"
)

// identity is required, but does not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// private key is required unless a new one was asked for,
// returns the key in its canonical hex form
func checkKey(key string, newKey bool) (string, error) {
	if "" == key {
		if !newKey {
			return "", ErrRequiredKey
		}
		return keypair.NewPrivateKeyHex()
	}
	if newKey {
		return "", fault.IncompatibleOptions
	}

	raw, _, err := keypair.MakeRawKeyPairFromHex(key)
	if nil != err {
		return "", err
	}
	return raw.PrivateKey, nil
}

// location is a required field
func checkLocation(location string) (string, error) {
	if "" == location {
		return "", ErrRequiredLocation
	}
	return location, nil
}

// cargo is a required field
func checkCargo(cargo string) (string, error) {
	if "" == cargo {
		return "", ErrRequiredCargo
	}
	return cargo, nil
}

// key name is a required field
func checkKeyName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredKeyName
	}
	return name, nil
}

// payload handle is a required field
func checkPayload(payload string) (vault.ExternalHandle, error) {
	external := vault.ExternalHandle{}
	if "" == payload {
		return external, ErrRequiredPayload
	}

	err := external.UnmarshalText([]byte(payload))
	return external, err
}

// proof is a required field
func checkProof(proof string) (vault.Proof, error) {
	if "" == proof {
		return nil, ErrRequiredProof
	}

	p := vault.Proof{}
	err := p.UnmarshalText([]byte(proof))
	if nil != err {
		return nil, err
	}
	return p, nil
}

// record id is required, zero is a valid id so blank detection
// happens before the number parse
func checkId(id string) (uint64, error) {
	if "" == id {
		return 0, ErrRequiredId
	}

	return strconv.ParseUint(id, 10, 64)
}

// recorder is either an identity name from the configuration or a
// literal checksum hex address
func checkRecorder(name string, config *configuration.Configuration) (*account.Account, error) {
	if "" == name {
		return nil, ErrRequiredRecorder
	}

	acc, err := account.AccountFromHexString(name)
	if nil == err {
		return acc, nil
	}

	return config.Account(name)
}

// resolve the identity, obtain its password and decrypt the signing key
func checkOwnerWithPasswordPrompt(name string, config *configuration.Configuration, c *cli.Context) (string, *configuration.Private, error) {

	if "" == name {
		name = config.DefaultIdentity
	}

	// name must exist before any password is asked for
	if _, err := config.Identity(name); nil != err {
		return "", nil, err
	}

	var err error
	password := c.GlobalString("password")
	agent := c.GlobalString("use-agent")

	if "" != agent {
		clearCache := c.GlobalBool("zero-agent-cache")
		password, err = passwordFromAgent(name, "access identity: "+name, agent, clearCache)
		if nil != err {
			return "", nil, err
		}
	} else if "" == password {
		password, err = promptPassword()
		if nil != err {
			return "", nil, err
		}
	}

	owner, err := config.Private(password, name)
	if nil != err {
		return "", nil, err
	}

	return name, owner, nil
}

// checkFileExists - check if file exists and whether it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
