package checker

import "github.com/styleexpr/exprlang/internal/etypes"

// expandParams eliminates at most one NArgs macro from params, repeating
// its type tuple enough times to account for argCount total arguments.
// A params list with no NArgs must match argCount exactly. The repeat
// count is forced by the arithmetic: fixed params consume one slot each,
// the NArgs tuple consumes len(tuple) slots per repetition, and any
// remainder (or a repeat count beyond NArgs.N) is an arity mismatch -
// this is also what makes case(...) reject an even-length argument list,
// since its NArgs tuple has length 2 and its one non-repeating param
// consumes the odd slot out.
func expandParams(params []etypes.Type, argCount int) ([]etypes.Type, error) {
	idx := -1
	var na etypes.NArgs
	for i, p := range params {
		if n, ok := p.(etypes.NArgs); ok {
			idx = i
			na = n
			break
		}
	}

	if idx == -1 {
		if len(params) != argCount {
			return nil, arityError(len(params), argCount)
		}
		return params, nil
	}

	fixed := len(params) - 1
	k := len(na.Types)
	remaining := argCount - fixed
	if k == 0 || remaining < 0 || remaining%k != 0 {
		return nil, arityError(-1, argCount)
	}
	repeat := remaining / k
	if na.N != etypes.Unbounded && repeat > na.N {
		return nil, arityError(-1, argCount)
	}

	expanded := make([]etypes.Type, 0, argCount)
	expanded = append(expanded, params[:idx]...)
	for r := 0; r < repeat; r++ {
		expanded = append(expanded, na.Types...)
	}
	expanded = append(expanded, params[idx+1:]...)
	return expanded, nil
}
