// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package notifications

// Notice is the category of an on-screen message.
type Notice string

// NotifyTypeless is used for messages that have no category. There can be
// any number of typeless messages.
const NotifyTypeless Notice = ""

// List of defined categories. The order of this list is the order in which
// the messages are stacked on screen.
const (
	// network statistics
	NotifyNetPlayPing   Notice = "NotifyNetPlayPing"
	NotifyNetPlayBuffer Notice = "NotifyNetPlayBuffer"

	// achievement progress
	NotifyAchievementPlayTime    Notice = "NotifyAchievementPlayTime"
	NotifyAchievementLeaderboard Notice = "NotifyAchievementLeaderboard"
	NotifyAchievementChallenge   Notice = "NotifyAchievementChallenge"

	// frame dumping has started or stopped
	NotifyFrameDump Notice = "NotifyFrameDump"

	// the display surface has changed size or been replaced
	NotifySurface Notice = "NotifySurface"

	// a screenshot has been taken
	NotifyScreenshot Notice = "NotifyScreenshot"
)

var order = []Notice{
	NotifyNetPlayPing,
	NotifyNetPlayBuffer,
	NotifyAchievementPlayTime,
	NotifyAchievementLeaderboard,
	NotifyAchievementChallenge,
	NotifyFrameDump,
	NotifySurface,
	NotifyScreenshot,
}

// Order returns the position of the category in the on-screen stack of
// messages. Typeless messages and unknown categories are placed after all
// defined categories.
func (n Notice) Order() int {
	for i, o := range order {
		if n == o {
			return i
		}
	}
	return len(order)
}

// IsTypeless returns true if the notice is NotifyTypeless.
func (n Notice) IsTypeless() bool {
	return n == NotifyTypeless
}

// Notify is implemented by types that can post a message for a category.
type Notify interface {
	Notify(notice Notice, text string) error
}
