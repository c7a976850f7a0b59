// gmt-sub004 - contour tracing for static map plots
// Copyright (C) 2026  The GMT Team
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package plot

import "errors"

type multi []Sink

// Multi returns a Sink which forwards every line to all of sinks.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Add(l *Line) error {
	for _, s := range m {
		if err := s.Add(l); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all sinks, even if some of them fail.
func (m multi) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
