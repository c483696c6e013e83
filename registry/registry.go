package registry

import (
	"fmt"
	"strconv"
	"strings"

	"starchain/block"
	"starchain/chain"
	"starchain/errors"
	"starchain/logx"
	"starchain/monitoring"
	"starchain/signing"
	"starchain/utils"
)

// challengeSuffix closes every issued challenge string.
const challengeSuffix = "starRegistry"

// DefaultWindowMinutes is how long an issued challenge stays submittable.
const DefaultWindowMinutes = 5.0

// Registry gates appends behind the ownership challenge protocol. A claimant
// asks for a challenge, signs it with the key behind their identity, and
// submits the signed challenge together with the star to register.
type Registry struct {
	chain         *chain.Chain
	verifier      signing.Verifier
	windowMinutes float64
	now           func() int64
}

func New(c *chain.Chain, verifier signing.Verifier, windowMinutes float64) *Registry {
	if windowMinutes <= 0 {
		windowMinutes = DefaultWindowMinutes
	}
	return &Registry{
		chain:         c,
		verifier:      verifier,
		windowMinutes: windowMinutes,
		now:           utils.NowUnix,
	}
}

// IssueChallenge returns "<identity>:<unix_seconds>:starRegistry". The
// timestamp is self-describing, so nothing is persisted server-side.
func (r *Registry) IssueChallenge(identity string) string {
	challenge := fmt.Sprintf("%s:%d:%s", identity, r.now(), challengeSuffix)
	monitoring.IncreaseIssuedChallengeCount()
	logx.Info("REGISTRY", "Issued challenge for identity ", identity)
	return challenge
}

// SubmitStar verifies the challenge window and the signature, then appends a
// block binding star to identity. The window is a hard boundary: elapsed
// time of exactly the window or more is rejected.
//
// Known limitation: no one-time-use tracking exists, so a valid signature
// stays submittable again until the challenge expires.
func (r *Registry) SubmitStar(identity string, challenge string, signature string, star block.Star) (*block.Block, error) {
	issuedAt, err := parseChallengeTimestamp(challenge)
	if err != nil {
		monitoring.RecordRejectedSubmission(monitoring.SubmissionExpiredChallenge)
		logx.Warn("REGISTRY", "Rejected malformed challenge from identity ", identity, ": ", err)
		return nil, errors.NewError(errors.ErrCodeExpiredChallenge, errors.ErrMsgInvalidChallenge)
	}
	if utils.ElapsedMinutes(issuedAt, r.now()) >= r.windowMinutes {
		monitoring.RecordRejectedSubmission(monitoring.SubmissionExpiredChallenge)
		logx.Warn("REGISTRY", "Rejected expired challenge from identity ", identity)
		return nil, errors.NewError(errors.ErrCodeExpiredChallenge, errors.ErrMsgExpiredChallenge)
	}
	if !r.verifier.Verify([]byte(challenge), identity, signature) {
		monitoring.RecordRejectedSubmission(monitoring.SubmissionInvalidSignature)
		logx.Warn("REGISTRY", "Rejected invalid signature from identity ", identity)
		return nil, errors.NewError(errors.ErrCodeInvalidSignature, errors.ErrMsgInvalidSignature)
	}

	unsealed, err := block.NewStarBlock(star, identity)
	if err != nil {
		monitoring.RecordRejectedSubmission(monitoring.SubmissionAppendFailure)
		return nil, errors.NewError(errors.ErrCodeAppendFailure, errors.ErrMsgAppendFailure)
	}
	sealed, err := r.chain.Append(unsealed)
	if err != nil {
		monitoring.RecordRejectedSubmission(monitoring.SubmissionAppendFailure)
		return nil, err
	}
	logx.Info("REGISTRY", "Registered star for identity ", identity, " in ", sealed.String())
	return sealed, nil
}

// parseChallengeTimestamp pulls the issuance timestamp out of the second
// colon-separated field.
func parseChallengeTimestamp(challenge string) (int64, error) {
	fields := strings.Split(challenge, ":")
	if len(fields) < 2 {
		return 0, fmt.Errorf("challenge has %d fields, want at least 2", len(fields))
	}
	issuedAt, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("challenge timestamp is not numeric: %w", err)
	}
	return issuedAt, nil
}
