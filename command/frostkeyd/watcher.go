// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/water4699/frost-key-chain/rpc"
)

const (
	watcherLoggerName = "watcher"

	// wait for the edit to settle before re-reading
	refreshDelay = 10 * time.Second
)

// watches the configuration file so the https client allow lists
// follow edits without a restart
type configurationWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newConfigurationWatcher(log *logger.L, targetFile string) (*configurationWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, errors.New("file does not exist")
	}

	return &configurationWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

func (w *configurationWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.watch()
	go w.apply()

	return nil
}

// relay file events as change/remove notifications
func (w *configurationWatcher) watch() {
	for {
		event := <-w.watcher.Events
		w.log.Infof("file event: %v", event)

		if watcherEventFileRemove(event) {
			w.log.Errorf("file %s removed, stop", w.filePath)
			w.sendEvent(w.remove, "remove")
			return
		}

		if path.Base(event.Name) != path.Base(filepath.Clean(w.filePath)) {
			w.log.Infof("file %s not match, discard event", w.filePath)
			continue
		}

		if watcherEventFileChange(event) {
			w.log.Info("sending configuration change event…")
			w.sendEvent(w.change, "change")
		}
	}
}

// re-read the configuration on each change and push the allow lists
// into the running https gateway
func (w *configurationWatcher) apply() {
	for {
		select {
		case <-w.change:
			<-time.After(refreshDelay)
			configuration, err := getConfiguration(w.filePath)
			if nil != err {
				w.log.Errorf("failed to read configuration from: %s error: %s", w.filePath, err)
				continue
			}
			err = rpc.UpdateAllow(configuration.HttpsRPC.Allow)
			if nil != err {
				w.log.Errorf("allow list update error: %s", err)
				continue
			}
			w.log.Info("allow lists updated")

		case <-w.remove:
			w.log.Warn("configuration file removed")
		}
	}
}

func (w *configurationWatcher) sendEvent(ch chan<- struct{}, name string) {
	if len(ch) < cap(ch) {
		ch <- struct{}{}
	} else {
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" || event.Op&fsnotify.Remove == fsnotify.Remove
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
