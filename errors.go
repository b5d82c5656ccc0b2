package gsched

import "github.com/pkg/errors"

// DeviceLostError is the error returned once the device has been reported lost by a fence wait
// or queue submission. It is permanent: every submission-related method fails with this error
// (possibly wrapped) for the remaining lifetime of the Scheduler.
var DeviceLostError error = errors.New("the device has been lost")

// SubmissionNotOpenError is the error returned from methods that require an open submission,
// such as CommandBuffer or BeginRenderPass, when no submission is open.
var SubmissionNotOpenError error = errors.New("no submission is currently open")
