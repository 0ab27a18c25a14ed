// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/xml"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the name of the XML configuration file looked up next
// to the executable.
const DefaultFileName = "TeleSign.config.xml"

// File is a parsed configuration file holding one or more named accounts.
type File struct {
	RestEndpoint   string
	MobileEndpoint string
	Proxy          Proxy

	accounts []Profile
}

type xmlConfig struct {
	XMLName          xml.Name     `xml:"TeleSignConfig"`
	ServiceURI       string       `xml:"ServiceUri"`
	ServiceMobileURI string       `xml:"ServiceMobileUri"`
	Proxy            xmlProxy     `xml:"Proxy"`
	Accounts         []xmlAccount `xml:"Accounts>Account"`
}

type xmlProxy struct {
	Enabled bool   `xml:"enabled,attr"`
	Address string `xml:"HttpProxyIPAddress"`
	Port    string `xml:"HttpProxyPort"`
	Auth    struct {
		Enabled  bool   `xml:"enabled,attr"`
		Username string `xml:"HttpProxyUsername"`
		Password string `xml:"HttpProxyPassword"`
	} `xml:"HttpProxyAuthentication"`
}

type xmlAccount struct {
	Name             string  `xml:"name,attr"`
	CustomerID       string  `xml:"CustomerId"`
	SecretKey        string  `xml:"SecretKey"`
	ServiceURI       *string `xml:"ServiceUri"`
	ServiceMobileURI *string `xml:"ServiceMobileUri"`
}

// DefaultPath returns the path of TeleSign.config.xml in the directory of
// the running executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), DefaultFileName), nil
}

// LoadXML reads a TeleSign.config.xml file.
func LoadXML(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseXML(data)
}

// ParseXML decodes the content of a TeleSign.config.xml file. Account
// level ServiceUri and ServiceMobileUri override the top-level ones.
func ParseXML(data []byte) (*File, error) {
	var doc xmlConfig

	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding XML configuration: %w", err)
	}

	f := File{
		RestEndpoint:   strings.TrimSpace(doc.ServiceURI),
		MobileEndpoint: strings.TrimSpace(doc.ServiceMobileURI),
	}

	if doc.Proxy.Enabled {
		f.Proxy.URL = proxyURL(doc.Proxy.Address, doc.Proxy.Port)

		if doc.Proxy.Auth.Enabled {
			f.Proxy.Username = doc.Proxy.Auth.Username
			f.Proxy.Password = doc.Proxy.Auth.Password
		}
	}

	for _, a := range doc.Accounts {
		p := Profile{
			Name:           a.Name,
			CustomerID:     strings.TrimSpace(a.CustomerID),
			APIKey:         strings.TrimSpace(a.SecretKey),
			RestEndpoint:   f.RestEndpoint,
			MobileEndpoint: f.MobileEndpoint,
			Proxy:          f.Proxy,
		}

		if a.ServiceURI != nil {
			p.RestEndpoint = strings.TrimSpace(*a.ServiceURI)
		}

		if a.ServiceMobileURI != nil {
			p.MobileEndpoint = strings.TrimSpace(*a.ServiceMobileURI)
		}

		f.accounts = append(f.accounts, p)
	}

	return &f, nil
}

// Account returns the profile named name, matched case-insensitively. An
// empty name selects DefaultAccount.
func (o *File) Account(name string) (*Profile, error) {
	if name == "" {
		name = DefaultAccount
	}

	for _, p := range o.accounts {
		if strings.EqualFold(p.Name, name) {
			found := p
			return &found, nil
		}
	}

	return nil, fmt.Errorf("There was no account '%s' found in the configuration", name) // nolint:stylecheck
}

// AccountNames lists the accounts in file order.
func (o *File) AccountNames() []string {
	names := make([]string, 0, len(o.accounts))
	for _, p := range o.accounts {
		names = append(names, p.Name)
	}
	return names
}

func proxyURL(address, port string) string {
	address = strings.TrimSpace(address)
	port = strings.TrimSpace(port)

	if address == "" {
		return ""
	}

	if !strings.Contains(address, "://") {
		address = "http://" + address
	}

	if port != "" {
		address = strings.TrimSuffix(address, "/")
		if _, _, err := net.SplitHostPort(strings.SplitN(address, "://", 2)[1]); err != nil {
			address += ":" + port
		}
	}

	return address
}
