// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"sort"
)

// InfoIdentityType - restricted access to data (excludes private items)
type InfoIdentityType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
}

// InfoConfiguration - restricted view of configuration
type InfoConfiguration struct {
	DefaultIdentity string             `json:"default_identity"`
	TestNet         bool               `json:"testnet"`
	Connections     []string           `json:"connections"`
	Identities      []InfoIdentityType `json:"identities"`
}

func (s *InfoConfiguration) Len() int {
	return len(s.Identities)
}

func (s *InfoConfiguration) Swap(i, j int) {
	s.Identities[i], s.Identities[j] = s.Identities[j], s.Identities[i]
}

func (s *InfoConfiguration) Less(i int, j int) bool {
	return s.Identities[i].Name < s.Identities[j].Name
}

// GetInfoConfiguration - restricted access to data (excludes private items)
func GetInfoConfiguration(filename string) (*InfoConfiguration, error) {

	configuration, err := GetConfiguration(filename)
	if nil != err {
		return nil, err
	}

	options := &InfoConfiguration{
		DefaultIdentity: configuration.DefaultIdentity,
		TestNet:         configuration.TestNet,
		Connections:     configuration.Connections,
		Identities:      make([]InfoIdentityType, 0, len(configuration.Identities)),
	}

	for name, identity := range configuration.Identities {
		options.Identities = append(options.Identities, InfoIdentityType{
			Name:        name,
			Description: identity.Description,
			Account:     identity.Account,
		})
	}

	sort.Sort(options)

	return options, nil
}
