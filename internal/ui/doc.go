// Package ui implements the interactive checker surface using bubbletea's
// Elm architecture.
//
// The workflow mirrors a DJ clearing a song for air:
//  1. [PromptView] : type an artist name
//  2. [SearchingView] : the Hot 100 is scanned, then the Billboard 200
//  3. [HitView] : one chart appearance at a time, with its week URL;
//     press c to keep scanning earlier weeks or q to stop
//  4. [VerdictView] : "you're good to go" when no appearance remains,
//     or the appearance count when the artist has charted
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Each continue keypress resumes the scan one week before the previous hit;
// the scan itself runs inside a tea.Cmd so the interface stays responsive
// while chart weeks are fetched.
package ui
